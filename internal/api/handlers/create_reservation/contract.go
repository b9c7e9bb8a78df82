package create_reservation

import (
	"context"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	checkSpots "github.com/m04kA/Mercearia-ReservationService/internal/usecase/check_spots"
	evaluatePanel "github.com/m04kA/Mercearia-ReservationService/internal/usecase/evaluate_panel"
	resolveAvailability "github.com/m04kA/Mercearia-ReservationService/internal/usecase/resolve_availability"
	submitReservation "github.com/m04kA/Mercearia-ReservationService/internal/usecase/submit_reservation"
)

type DraftValidator interface {
	ValidateDraft(draft domain.ReservationDraft) error
}

type ResolveAvailabilityUseCase interface {
	Execute(ctx context.Context, req *resolveAvailability.Request) (*resolveAvailability.Response, error)
}

type CheckSpotsUseCase interface {
	Execute(ctx context.Context, req *checkSpots.Request) (*checkSpots.Response, error)
}

type EvaluatePanelUseCase interface {
	Execute(ctx context.Context, req *evaluatePanel.Request) (*evaluatePanel.Response, error)
}

type SubmitReservationUseCase interface {
	Execute(ctx context.Context, req *submitReservation.Request) (*domain.SubmissionResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
