package get_spots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	checkSpots "github.com/m04kA/Mercearia-ReservationService/internal/usecase/check_spots"
	"github.com/m04kA/Mercearia-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *checkSpots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkSpots.Request) (*checkSpots.Response, error) {
	f.got = req
	return &checkSpots.Response{Spots: domain.SpotAvailability{Available: types.No, Message: "Lotado"}}, nil
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/spots?date=2030-03-15&location=deck_lateral_fundo", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"available": false, "message": "Lotado"}`, rec.Body.String())
	require.NotNil(t, uc.got)
	assert.Equal(t, "2030-03-15", uc.got.Date)
	assert.Equal(t, domain.LocationSideDeckBack, uc.got.Location)
}

func TestHandle_InvalidLocation(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/spots?date=2030-03-15&location=telhado", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
