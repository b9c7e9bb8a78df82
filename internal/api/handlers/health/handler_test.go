package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

type fakeProbe bool

func (f fakeProbe) IsOnline() bool { return bool(f) }

func TestHandle(t *testing.T) {
	t.Run("offline but healthy", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewHandler(fakePinger{}, fakeProbe(false)).Handle(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, Response{Status: "ok", Database: "ok", Online: false}, resp)
	})

	t.Run("database down", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewHandler(fakePinger{err: errors.New("database is locked")}, nil).Handle(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
