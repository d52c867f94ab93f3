package usecases

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"scheme-sense.backend/internal/domain/entities"
	domainerrors "scheme-sense.backend/internal/domain/errors"
	"scheme-sense.backend/internal/domain/repositories"
	"scheme-sense.backend/pkg/metrics"
)

// ApplicationUsecase handles the scheme application ledger
type ApplicationUsecase struct {
	appRepo    repositories.ApplicationRepository
	schemeRepo repositories.SchemeRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(appRepo repositories.ApplicationRepository, schemeRepo repositories.SchemeRepository) *ApplicationUsecase {
	return &ApplicationUsecase{
		appRepo:    appRepo,
		schemeRepo: schemeRepo,
	}
}

// Apply records a new Pending application for the user. Eligibility is not
// re-checked here: the dashboard only offers "apply" for matched schemes, and
// the ledger deliberately accepts any resolvable scheme.
func (u *ApplicationUsecase) Apply(ctx context.Context, userID uuid.UUID, input *entities.ApplyInput) (*entities.SchemeApplication, error) {
	schemeID, err := uuid.Parse(input.SchemeID)
	if err != nil {
		return nil, domainerrors.ErrNotFound
	}

	if _, err := u.schemeRepo.GetByID(ctx, schemeID); err != nil {
		return nil, err
	}

	app := &entities.SchemeApplication{
		ID:          uuid.New(),
		UserID:      userID,
		SchemeID:    schemeID,
		SchemeTitle: input.SchemeTitle,
		Status:      entities.ApplicationPending,
		AppliedAt:   time.Now(),
	}

	if err := u.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	metrics.ApplicationsCreated.Inc()
	return app, nil
}

// ListByUser returns the user's applications, most recent first
func (u *ApplicationUsecase) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.SchemeApplication, int, error) {
	return u.appRepo.ListByUser(ctx, userID, limit, offset)
}

// UpdateStatus performs the administrative status transition. Only
// Pending -> Approved and Pending -> Rejected are legal; terminal states are
// final.
func (u *ApplicationUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, input *entities.UpdateApplicationStatusInput) (*entities.SchemeApplication, error) {
	next := entities.ApplicationStatus(input.Status)
	if !next.IsValid() {
		return nil, domainerrors.BadRequest("Unknown application status: " + input.Status)
	}

	app, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !app.Status.CanTransitionTo(next) {
		return nil, domainerrors.NewAppError(
			http.StatusBadRequest, domainerrors.CodeBadRequest,
			"Application status cannot change from "+string(app.Status)+" to "+string(next),
			domainerrors.ErrInvalidTransition,
		)
	}

	if err := u.appRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	app.Status = next
	return app, nil
}
