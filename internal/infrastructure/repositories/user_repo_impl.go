package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"scheme-sense.backend/internal/domain/entities"
	domainerrors "scheme-sense.backend/internal/domain/errors"
	"scheme-sense.backend/internal/infrastructure/models"
)

// UserRepository implements user profile data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user profile. A duplicate phone surfaces as
// ErrAlreadyExists with no record written.
func (r *UserRepository) Create(ctx context.Context, user *entities.UserProfile) error {
	details, err := json.Marshal(user.SectorDetails)
	if err != nil {
		return err
	}

	m := &models.User{
		ID:            user.ID,
		FullName:      user.FullName,
		Phone:         user.Phone,
		PasswordHash:  user.PasswordHash,
		Age:           user.Age,
		Income:        user.Income,
		Caste:         string(user.Caste),
		Education:     string(user.Education),
		District:      user.District,
		Block:         user.Block,
		Sector:        string(user.Sector),
		SectorDetails: string(details),
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	user.ID = m.ID
	return nil
}

// GetByID gets a user profile by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.UserProfile, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m)
}

// GetByPhone gets a user profile by phone number
func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*entities.UserProfile, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m)
}

// Update persists the mutable profile fields. ID and phone are never touched.
func (r *UserRepository) Update(ctx context.Context, user *entities.UserProfile) error {
	details, err := json.Marshal(user.SectorDetails)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"income":         user.Income,
		"education":      string(user.Education),
		"sector":         string(user.Sector),
		"sector_details": string(details),
		"updated_at":     time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toUserEntity(m *models.User) (*entities.UserProfile, error) {
	var details entities.SectorDetails
	if m.SectorDetails != "" {
		if err := json.Unmarshal([]byte(m.SectorDetails), &details); err != nil {
			return nil, err
		}
	}

	return &entities.UserProfile{
		ID:            m.ID,
		FullName:      m.FullName,
		Phone:         m.Phone,
		PasswordHash:  m.PasswordHash,
		Age:           m.Age,
		Income:        m.Income,
		Caste:         entities.Caste(m.Caste),
		Education:     entities.Education(m.Education),
		District:      m.District,
		Block:         m.Block,
		Sector:        entities.Sector(m.Sector),
		SectorDetails: details,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

// isDuplicateKey detects unique constraint violations across the postgres
// driver (translated) and the sqlite driver used in tests (string match).
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
