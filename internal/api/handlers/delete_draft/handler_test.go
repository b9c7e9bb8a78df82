package delete_draft

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Mercearia-ReservationService/internal/infra/storage/drafts"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo map[string]error

func (f fakeRepo) Delete(_ context.Context, id string) error {
	if err, ok := f[id]; ok {
		return err
	}
	return drafts.ErrDraftNotFound
}

func TestHandle(t *testing.T) {
	repo := fakeRepo{"d1": nil, "broken": errors.New("disk full")}

	r := mux.NewRouter()
	r.HandleFunc("/drafts/{draftId}", NewHandler(repo, nopLogger{}).Handle)

	tests := []struct {
		id   string
		code int
	}{
		{"d1", http.StatusNoContent},
		{"missing", http.StatusNotFound},
		{"broken", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/drafts/"+tt.id, nil))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
