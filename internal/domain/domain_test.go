package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTimeSlots(t *testing.T) {
	assert.Equal(t, []string{"18:00", "18:30", "19:00", "19:30", "20:00", "20:30"}, DefaultTimeSlots())
}

func TestAvailabilityConfig_WithDefaults(t *testing.T) {
	cfg := AvailabilityConfig{Message: "hello"}.WithDefaults()

	assert.Equal(t, DefaultTimeSlots(), cfg.DefaultTimeSlots)
	assert.Empty(t, cfg.BlockedDates)
	assert.Empty(t, cfg.Exceptions)
	assert.Equal(t, []int{0}, cfg.BlockedWeekdays)
	assert.Equal(t, "hello", cfg.Message)

	explicit := AvailabilityConfig{BlockedWeekdays: []int{}}.WithDefaults()
	assert.Empty(t, explicit.BlockedWeekdays)
}

func TestLocation_AllowsPanel(t *testing.T) {
	assert.True(t, LocationSideDeckBack.AllowsPanel())
	assert.True(t, LocationSideDeckStage.AllowsPanel())
	assert.True(t, LocationOutdoorFront.AllowsPanel())
	assert.False(t, LocationNearStage.AllowsPanel())
	assert.False(t, LocationNearPlayground.AllowsPanel())
	assert.False(t, Location("").AllowsPanel())
}

func TestReservationDraft_ChangeTypeResetsPanel(t *testing.T) {
	draft := NewReservationDraft()
	draft.TipoReserva = TypeBirthday
	draft.ReservaPainel = true
	draft.FotoPainel = "data:image/png;base64,AAA"
	draft.OrientacoesPainel = "Feliz aniversário"

	require.True(t, draft.WantsPanel())

	draft.ChangeType(TypeFamilyGathering)
	assert.False(t, draft.ReservaPainel)
	assert.Empty(t, draft.FotoPainel)
	assert.Empty(t, draft.OrientacoesPainel)
	assert.False(t, draft.WantsPanel())
}

func TestNewSubmissionPayload(t *testing.T) {
	draft := ReservationDraft{
		Nome:              "Maria Silva",
		Email:             "maria@example.com",
		Telefone:          "(11) 98765-4321",
		DataNascimento:    "1990-05-10",
		TipoReserva:       TypeFamilyGathering,
		QuantidadePessoas: 8,
		DataReserva:       "2025-03-14",
		HorarioDesejado:   "19:00",
		LocalDesejado:     LocationNearStage,
	}
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	payload := NewSubmissionPayload(draft, "form-1", now)
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"timestamp": "2025-03-01T12:00:00Z",
		"formId": "form-1",
		"dadosPessoais": {"nome": "Maria Silva", "email": "maria@example.com", "telefone": "(11) 98765-4321", "dataNascimento": "1990-05-10"},
		"tipoReserva": {"tipo": "reuniao", "reservaPainel": false, "fotoPainel": null, "orientacoesPainel": null, "tipoCardapio": null, "orientacoesCompra": null},
		"detalhesReserva": {"quantidadePessoas": 8, "dataReserva": "2025-03-14", "horarioDesejado": "19:00", "localDesejado": "proximo_palco_salao", "observacoes": null}
	}`, string(data))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Aniversário", TypeBirthday.Label())
	assert.Equal(t, "Deck lateral (fundo)", LocationSideDeckBack.Label())
	assert.Equal(t, "Pacote Fechado", MenuPackage.Label())
	assert.Equal(t, "desconhecido", ReservationType("desconhecido").Label())
}
