package drain_offline_queue

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	submitReservation "github.com/m04kA/Mercearia-ReservationService/internal/usecase/submit_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeDrainer struct {
	report *submitReservation.DrainReport
	err    error
}

func (f fakeDrainer) Drain(context.Context) (*submitReservation.DrainReport, error) {
	return f.report, f.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		drainer    fakeDrainer
		wantStatus int
	}{
		{
			name: "completed",
			drainer: fakeDrainer{report: &submitReservation.DrainReport{
				Total: 2, Delivered: []string{"a"}, Remaining: []string{"b"},
			}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "another drain running",
			drainer:    fakeDrainer{report: &submitReservation.DrainReport{Skipped: true}},
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "queue unavailable",
			drainer:    fakeDrainer{err: errors.New("disk I/O error")},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(tt.drainer, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/offline-queue/drain", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.drainer.report != nil {
				var report submitReservation.DrainReport
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
				assert.Equal(t, *tt.drainer.report, report)
			}
		})
	}
}
