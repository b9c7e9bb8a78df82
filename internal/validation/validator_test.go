package validation

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

func newTestValidator() *Validator {
	return New(time.UTC).WithClock(func() time.Time {
		return time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	})
}

func validDraft() domain.ReservationDraft {
	draft := domain.NewReservationDraft()
	draft.Nome = "Ana Souza"
	draft.Email = "ana@example.com"
	draft.Telefone = "(11) 98765-4321"
	draft.DataNascimento = "1990-05-20"
	draft.TipoReserva = domain.TypeFamilyGathering
	draft.QuantidadePessoas = 8
	draft.DataReserva = "2025-03-14"
	draft.HorarioDesejado = "19:00"
	draft.LocalDesejado = domain.LocationNearStage
	return draft
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrValidation)

	var vErr *Error
	require.True(t, errors.As(err, &vErr))
	return vErr.FieldErrors
}

func TestValidateDraft_Valid(t *testing.T) {
	assert.NoError(t, newTestValidator().ValidateDraft(validDraft()))
}

func TestValidateStep_PersonalData(t *testing.T) {
	draft := validDraft()
	draft.Nome = "Al"
	draft.Email = "not-an-email"
	draft.Telefone = "11987654321"
	draft.DataNascimento = "2010-01-01"

	errs := fieldErrors(t, newTestValidator().ValidateStep(draft, domain.StepPersonalData))

	assert.Equal(t, map[string]string{
		"nome":           msgNome,
		"email":          msgEmail,
		"telefone":       msgTelefone,
		"dataNascimento": msgDataNascimento,
	}, errs)
}

func TestValidateStep_PersonalDataIgnoresLaterSteps(t *testing.T) {
	draft := validDraft()
	draft.QuantidadePessoas = 1
	draft.LocalDesejado = ""

	assert.NoError(t, newTestValidator().ValidateStep(draft, domain.StepPersonalData))
}

func TestValidate_AgeBoundaries(t *testing.T) {
	v := newTestValidator()

	draft := validDraft()
	draft.DataNascimento = "2007-03-12" // 18 anos hoje
	assert.NoError(t, v.ValidateStep(draft, domain.StepPersonalData))

	draft.DataNascimento = "2007-03-13" // faz 18 amanhã
	errs := fieldErrors(t, v.ValidateStep(draft, domain.StepPersonalData))
	assert.Equal(t, msgDataNascimento, errs["dataNascimento"])

	draft.DataNascimento = "1900-01-01"
	errs = fieldErrors(t, v.ValidateStep(draft, domain.StepPersonalData))
	assert.Contains(t, errs, "dataNascimento")
}

func TestValidateStep_ReservationDetails(t *testing.T) {
	draft := validDraft()
	draft.TipoReserva = "confraternizacao"
	draft.QuantidadePessoas = 51
	draft.DataReserva = "2025-03-11"
	draft.HorarioDesejado = "7pm"
	draft.LocalDesejado = "terraco"
	draft.Observacoes = strings.Repeat("a", 1001)

	errs := fieldErrors(t, newTestValidator().ValidateStep(draft, domain.StepReservationDetails))

	assert.Equal(t, map[string]string{
		"tipoReserva":       msgTipoReserva,
		"quantidadePessoas": msgPartySizeMax,
		"dataReserva":       msgDataReserva,
		"horarioDesejado":   msgHorario,
		"localDesejado":     msgLocal,
		"observacoes":       msgMax1000,
	}, errs)
}

func TestValidate_PartySizeMinimum(t *testing.T) {
	draft := validDraft()
	draft.QuantidadePessoas = 3

	errs := fieldErrors(t, newTestValidator().ValidateStep(draft, domain.StepReservationDetails))
	assert.Equal(t, msgPartySizeMin, errs["quantidadePessoas"])
}

func TestValidate_TodayIsAllowed(t *testing.T) {
	draft := validDraft()
	draft.DataReserva = "2025-03-12"

	assert.NoError(t, newTestValidator().ValidateStep(draft, domain.StepReservationDetails))
}

func TestValidate_Panel(t *testing.T) {
	v := newTestValidator()

	draft := validDraft()
	draft.TipoReserva = domain.TypeBirthday
	draft.ReservaPainel = true

	errs := fieldErrors(t, v.ValidateStep(draft, domain.StepReservationDetails))
	assert.Equal(t, msgFotoPainel, errs["fotoPainel"])
	assert.Equal(t, msgOrientacoesPainel, errs["orientacoesPainel"])

	draft.FotoPainel = "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png bytes"))
	draft.OrientacoesPainel = "Feliz aniversário, Ana!"
	assert.NoError(t, v.ValidateStep(draft, domain.StepReservationDetails))

	draft.FotoPainel = "data:image/png;base64,%%%"
	errs = fieldErrors(t, v.ValidateStep(draft, domain.StepReservationDetails))
	assert.Equal(t, msgFotoPainelInvalid, errs["fotoPainel"])

	big := make([]byte, domain.MaxPanelPhotoSizeBytes+1)
	draft.FotoPainel = base64.StdEncoding.EncodeToString(big)
	errs = fieldErrors(t, v.ValidateStep(draft, domain.StepReservationDetails))
	assert.Equal(t, msgFotoPainelSize, errs["fotoPainel"])

	draft.OrientacoesPainel = strings.Repeat("x", 501)
	draft.FotoPainel = base64.StdEncoding.EncodeToString([]byte("ok"))
	errs = fieldErrors(t, v.ValidateStep(draft, domain.StepReservationDetails))
	assert.Equal(t, msgMax500, errs["orientacoesPainel"])
}

func TestValidate_PanelIgnoredForUnsupportedType(t *testing.T) {
	draft := validDraft()
	draft.TipoReserva = domain.TypeFamilyGathering
	draft.ReservaPainel = true

	assert.NoError(t, newTestValidator().ValidateStep(draft, domain.StepReservationDetails))
}

func TestValidateDraft_CombinesSteps(t *testing.T) {
	draft := validDraft()
	draft.Nome = ""
	draft.LocalDesejado = ""

	errs := fieldErrors(t, newTestValidator().ValidateStep(draft, domain.StepSummary))
	assert.Contains(t, errs, "nome")
	assert.Contains(t, errs, "localDesejado")
}

func TestError_Message(t *testing.T) {
	err := &Error{FieldErrors: map[string]string{"nome": msgNome, "email": msgEmail}}
	assert.Equal(t, "validation failed: email, nome", err.Error())
}
