package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"scheme-sense.backend/internal/domain/entities"
	domainerrors "scheme-sense.backend/internal/domain/errors"
	"scheme-sense.backend/internal/infrastructure/models"
)

// ApplicationRepository implements scheme application data operations
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create writes a new application record. The insert is a single statement,
// so no partial record is ever observable.
func (r *ApplicationRepository) Create(ctx context.Context, app *entities.SchemeApplication) error {
	m := &models.Application{
		ID:          app.ID,
		UserID:      app.UserID,
		SchemeID:    app.SchemeID,
		SchemeTitle: app.SchemeTitle,
		Status:      string(app.Status),
		AppliedAt:   app.AppliedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	app.ID = m.ID
	return nil
}

// GetByID gets an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.SchemeApplication, error) {
	var m models.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toApplicationEntity(&m), nil
}

// ListByUser returns a user's applications, most recent first
func (r *ApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.SchemeApplication, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Application
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	apps := make([]*entities.SchemeApplication, 0, len(ms))
	for i := range ms {
		apps = append(apps, toApplicationEntity(&ms[i]))
	}
	return apps, int(total), nil
}

// UpdateStatus sets a new status on an application
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toApplicationEntity(m *models.Application) *entities.SchemeApplication {
	return &entities.SchemeApplication{
		ID:          m.ID,
		UserID:      m.UserID,
		SchemeID:    m.SchemeID,
		SchemeTitle: m.SchemeTitle,
		Status:      entities.ApplicationStatus(m.Status),
		AppliedAt:   m.AppliedAt,
	}
}
