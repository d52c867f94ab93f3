package repositories

import (
	"context"

	"github.com/google/uuid"
	"scheme-sense.backend/internal/domain/entities"
)

// UserRepository defines user profile data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.UserProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.UserProfile, error)
	GetByPhone(ctx context.Context, phone string) (*entities.UserProfile, error)
	Update(ctx context.Context, user *entities.UserProfile) error
}
