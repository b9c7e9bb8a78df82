package save_draft

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	saved []domain.DraftSnapshot
}

func (f *fakeRepo) Save(_ context.Context, snapshot domain.DraftSnapshot) error {
	f.saved = append(f.saved, snapshot)
	return nil
}

func TestHandle(t *testing.T) {
	repo := &fakeRepo{}
	r := mux.NewRouter()
	r.HandleFunc("/drafts/{draftId}", NewHandler(repo, nopLogger{}).Handle).Methods(http.MethodPut)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/drafts/d1",
		strings.NewReader(`{"formData":{"nome":"Ana","quantidadePessoas":4},"currentStep":2}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	if assert.Len(t, repo.saved, 1) {
		assert.Equal(t, "d1", repo.saved[0].ID)
		assert.Equal(t, "Ana", repo.saved[0].FormData.Nome)
		assert.Equal(t, 2, repo.saved[0].CurrentStep)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/drafts/d1", strings.NewReader(`{"formData":{},"currentStep":7}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, repo.saved, 1)
}
