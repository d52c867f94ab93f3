package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"scheme-sense.backend/internal/domain/entities"
	domainerrors "scheme-sense.backend/internal/domain/errors"
	"scheme-sense.backend/internal/infrastructure/models"
)

// SchemeRepository implements scheme catalog data operations
type SchemeRepository struct {
	db *gorm.DB
}

// NewSchemeRepository creates a new scheme repository
func NewSchemeRepository(db *gorm.DB) *SchemeRepository {
	return &SchemeRepository{db: db}
}

// CreateBatch inserts schemes in one transaction, preserving their position
// so catalog order survives the round trip.
func (r *SchemeRepository) CreateBatch(ctx context.Context, schemes []*entities.Scheme) error {
	if len(schemes) == 0 {
		return nil
	}

	ms := make([]*models.Scheme, 0, len(schemes))
	for _, s := range schemes {
		m, err := toSchemeModel(s)
		if err != nil {
			return err
		}
		ms = append(ms, m)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&ms).Error
	})
}

// GetByID gets a scheme by ID
func (r *SchemeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Scheme, error) {
	var m models.Scheme
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toSchemeEntity(&m)
}

// List returns every scheme in catalog insertion order
func (r *SchemeRepository) List(ctx context.Context) ([]*entities.Scheme, error) {
	var ms []models.Scheme
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	schemes := make([]*entities.Scheme, 0, len(ms))
	for i := range ms {
		s, err := toSchemeEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		schemes = append(schemes, s)
	}
	return schemes, nil
}

// Count returns the number of schemes in the catalog
func (r *SchemeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Scheme{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func toSchemeModel(s *entities.Scheme) (*models.Scheme, error) {
	castes, err := json.Marshal(s.Rule.AllowedCastes)
	if err != nil {
		return nil, err
	}
	sectors, err := json.Marshal(s.Rule.TargetSectors)
	if err != nil {
		return nil, err
	}

	return &models.Scheme{
		ID:            s.ID,
		Title:         s.Title,
		Description:   s.Description,
		Benefit:       s.Benefit,
		Category:      string(s.Category),
		Icon:          s.Icon,
		MinAge:        s.Rule.MinAge,
		MaxAge:        s.Rule.MaxAge,
		MaxIncome:     s.Rule.MaxIncome,
		AllowedCastes: string(castes),
		MinEducation:  string(s.Rule.MinEducation),
		TargetSectors: string(sectors),
		Position:      s.Position,
		CreatedAt:     s.CreatedAt,
	}, nil
}

func toSchemeEntity(m *models.Scheme) (*entities.Scheme, error) {
	rule := entities.SchemeRule{
		MinAge:       m.MinAge,
		MaxAge:       m.MaxAge,
		MaxIncome:    m.MaxIncome,
		MinEducation: entities.Education(m.MinEducation),
	}
	if m.AllowedCastes != "" {
		if err := json.Unmarshal([]byte(m.AllowedCastes), &rule.AllowedCastes); err != nil {
			return nil, err
		}
	}
	if m.TargetSectors != "" {
		if err := json.Unmarshal([]byte(m.TargetSectors), &rule.TargetSectors); err != nil {
			return nil, err
		}
	}

	return &entities.Scheme{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Benefit:     m.Benefit,
		Category:    entities.SchemeCategory(m.Category),
		Icon:        m.Icon,
		Rule:        rule,
		Position:    m.Position,
		CreatedAt:   m.CreatedAt,
	}, nil
}
