package events

import (
	"encoding/json"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

func TestNewPublisher_BrokerUnavailable(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	_, err = NewPublisher(fmt.Sprintf("amqp://guest:guest@%s/", addr), "mercearia.reservations")
	require.ErrorIs(t, err, ErrConnect)
}

func TestEncode(t *testing.T) {
	event := domain.ReservationEvent{
		Type:       domain.EventReservationQueued,
		FormID:     "form-1",
		OccurredAt: time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC),
		Payload:    domain.SubmissionPayload{FormID: "form-1"},
	}

	body, err := encode(event)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "reservation.queued", decoded["type"])
	assert.Equal(t, "form-1", decoded["formId"])
	assert.Equal(t, "2025-03-12T15:00:00Z", decoded["occurredAt"])
}
