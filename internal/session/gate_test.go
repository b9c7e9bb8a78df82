package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	"github.com/m04kA/Mercearia-ReservationService/pkg/types"
)

func bookableState() State {
	state := initialState()
	state.Draft.DataReserva = testDate
	state.Draft.HorarioDesejado = "18:00"
	state.Draft.LocalDesejado = domain.LocationSideDeckBack
	state.Draft.QuantidadePessoas = 12
	state.Availability = &domain.AvailabilityResult{Date: testDate, Bookable: true, TimeSlots: []string{"18:00", "18:30"}}
	state.Spots = domain.SpotAvailability{Available: types.Yes}
	return state
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *State)
		field  string
		want   string
	}{
		{
			name:   "all checks pass",
			modify: func(s *State) {},
		},
		{
			name:   "availability not resolved yet",
			modify: func(s *State) { s.Availability = nil },
			field:  "dataReserva",
			want:   domain.MsgDateNotChecked,
		},
		{
			name:   "availability belongs to another date",
			modify: func(s *State) { s.Draft.DataReserva = "2030-03-16" },
			field:  "dataReserva",
			want:   domain.MsgDateNotChecked,
		},
		{
			name: "date not bookable",
			modify: func(s *State) {
				s.Availability.Bookable = false
				s.Availability.Message = domain.MsgTodayClosed
			},
			field: "dataReserva",
			want:  domain.MsgTodayClosed,
		},
		{
			name:   "time not among slots",
			modify: func(s *State) { s.Draft.HorarioDesejado = "21:00" },
			field:  "horarioDesejado",
			want:   domain.MsgTimeUnavailable,
		},
		{
			name:   "spots explicitly unavailable",
			modify: func(s *State) { s.Spots = domain.SpotAvailability{Available: types.No} },
			field:  "localDesejado",
			want:   domain.MsgSpotsUnavailable,
		},
		{
			name:   "spots unavailable with service message",
			modify: func(s *State) { s.Spots = domain.SpotAvailability{Available: types.No, Message: "Lotado"} },
			field:  "localDesejado",
			want:   "Lotado",
		},
		{
			name:   "spots still unknown",
			modify: func(s *State) { s.Spots = domain.UnknownSpotAvailability() },
			field:  "localDesejado",
			want:   domain.MsgSpotsPending,
		},
		{
			name: "spots check failed",
			modify: func(s *State) {
				s.Spots = domain.SpotAvailability{Available: types.Unknown, Message: domain.MsgSpotsCheckFailed, Error: "timeout"}
			},
			field: "localDesejado",
			want:  domain.MsgSpotsCheckFailed,
		},
		{
			name: "panel explicitly unavailable",
			modify: func(s *State) {
				s.Draft.TipoReserva = domain.TypeBirthday
				s.Draft.ReservaPainel = true
				s.Panel = domain.PanelEligibility{Available: types.No, Message: "Painéis esgotados"}
			},
			field: "reservaPainel",
			want:  "Painéis esgotados",
		},
		{
			name: "panel party size rule applies even when check is unknown",
			modify: func(s *State) {
				s.Draft.TipoReserva = domain.TypeBachelorParty
				s.Draft.ReservaPainel = true
				s.Draft.QuantidadePessoas = 6
			},
			field: "reservaPainel",
			want:  domain.MsgPanelPartySizeTooLow,
		},
		{
			name: "panel location rule",
			modify: func(s *State) {
				s.Draft.TipoReserva = domain.TypeBirthday
				s.Draft.ReservaPainel = true
				s.Draft.LocalDesejado = domain.LocationNearStage
			},
			field: "reservaPainel",
			want:  domain.MsgPanelLocationInvalid,
		},
		{
			name: "unknown panel eligibility does not block",
			modify: func(s *State) {
				s.Draft.TipoReserva = domain.TypeBirthday
				s.Draft.ReservaPainel = true
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := bookableState()
			tt.modify(&state)

			reasons := Evaluate(state, domain.StepReservationDetails, fakeValidator{}, Rules{})
			if tt.field == "" {
				assert.Empty(t, reasons)
				return
			}
			assert.Equal(t, tt.want, reasons[tt.field])
		})
	}
}

func TestEvaluate_StepsCombineFieldErrors(t *testing.T) {
	validator := fakeValidator{byStep: map[int]map[string]string{
		domain.StepPersonalData:       {"email": "E-mail inválido"},
		domain.StepReservationDetails: {"quantidadePessoas": "Mínimo de 4 pessoas"},
	}}
	state := bookableState()

	assert.Equal(t, map[string]string{"email": "E-mail inválido"},
		Evaluate(state, domain.StepPersonalData, validator, Rules{}))
	assert.Equal(t, map[string]string{"quantidadePessoas": "Mínimo de 4 pessoas"},
		Evaluate(state, domain.StepReservationDetails, validator, Rules{}))
	assert.Len(t, Evaluate(state, domain.StepSummary, validator, Rules{}), 2)
}

func TestEvaluate_ConfiguredPanelMinimum(t *testing.T) {
	state := bookableState()
	state.Draft.TipoReserva = domain.TypeBirthday
	state.Draft.ReservaPainel = true
	state.Draft.QuantidadePessoas = 12

	assert.Empty(t, Evaluate(state, domain.StepReservationDetails, fakeValidator{}, Rules{}))

	reasons := Evaluate(state, domain.StepReservationDetails, fakeValidator{}, Rules{PanelMinPartySize: 15})
	assert.Equal(t, domain.MsgPanelPartySizeTooLow, reasons["reservaPainel"])

	assert.Equal(t, reasons, AvailabilityBlockers(state, Rules{PanelMinPartySize: 15}))
}
