package repositories

import (
	"context"

	"github.com/google/uuid"
	"scheme-sense.backend/internal/domain/entities"
)

// ApplicationRepository defines scheme application data operations
type ApplicationRepository interface {
	Create(ctx context.Context, app *entities.SchemeApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.SchemeApplication, error)
	// ListByUser returns applications sorted by applied_at descending.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.SchemeApplication, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error
}
