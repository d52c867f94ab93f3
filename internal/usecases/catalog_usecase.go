package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"scheme-sense.backend/internal/domain/entities"
	domainerrors "scheme-sense.backend/internal/domain/errors"
	"scheme-sense.backend/internal/domain/repositories"
	"scheme-sense.backend/pkg/logger"
	"scheme-sense.backend/pkg/metrics"
)

// MatchCache caches eligible scheme IDs per user
type MatchCache interface {
	Put(ctx context.Context, userID uuid.UUID, schemeIDs []uuid.UUID) error
	Get(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, bool, error)
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// CatalogUsecase handles scheme catalog bootstrap and eligibility matching
type CatalogUsecase struct {
	schemeRepo     repositories.SchemeRepository
	userRepo       repositories.UserRepository
	matchCache     MatchCache
	seed           int64
	generatedCount int
}

// NewCatalogUsecase creates a new catalog usecase. matchCache may be nil when
// no cache is configured.
func NewCatalogUsecase(
	schemeRepo repositories.SchemeRepository,
	userRepo repositories.UserRepository,
	matchCache MatchCache,
	seed int64,
	generatedCount int,
) *CatalogUsecase {
	return &CatalogUsecase{
		schemeRepo:     schemeRepo,
		userRepo:       userRepo,
		matchCache:     matchCache,
		seed:           seed,
		generatedCount: generatedCount,
	}
}

// Seed populates the catalog exactly once. If the store already holds any
// scheme the call is a no-op, so concurrent process starts at worst race on
// the count check and never corrupt existing rows.
func (u *CatalogUsecase) Seed(ctx context.Context) error {
	count, err := u.schemeRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Debug(ctx, "Scheme catalog already seeded", zap.Int64("count", count))
		return nil
	}

	schemes := buildSeedCatalog(u.seed, u.generatedCount)
	if err := u.schemeRepo.CreateBatch(ctx, schemes); err != nil {
		return err
	}

	logger.Info(ctx, "Scheme catalog seeded", zap.Int("schemes", len(schemes)))
	return nil
}

// GetEligibleSchemes returns the schemes the user's profile qualifies for,
// in catalog insertion order.
func (u *CatalogUsecase) GetEligibleSchemes(ctx context.Context, userID uuid.UUID) ([]*entities.Scheme, error) {
	profile, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	schemes, err := u.schemeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if cached, ok := u.cachedMatches(ctx, userID, schemes); ok {
		return cached, nil
	}

	eligible := make([]*entities.Scheme, 0)
	ids := make([]uuid.UUID, 0)
	for _, s := range schemes {
		metrics.EligibilityEvaluations.Inc()
		if s.Rule.Allows(profile) {
			eligible = append(eligible, s)
			ids = append(ids, s.ID)
			metrics.MatchesReturned.WithLabelValues(string(s.Category)).Inc()
		}
	}

	if u.matchCache != nil {
		if err := u.matchCache.Put(ctx, userID, ids); err != nil {
			logger.Warn(ctx, "Failed to cache eligibility matches", zap.Error(err))
		}
	}

	return eligible, nil
}

// GetScheme returns a single scheme by its string ID
func (u *CatalogUsecase) GetScheme(ctx context.Context, id string) (*entities.Scheme, error) {
	schemeID, err := uuid.Parse(id)
	if err != nil {
		return nil, domainerrors.ErrNotFound
	}
	return u.schemeRepo.GetByID(ctx, schemeID)
}

// cachedMatches resolves a cached ID list against the live catalog. A cache
// failure is treated as a miss, never an error.
func (u *CatalogUsecase) cachedMatches(ctx context.Context, userID uuid.UUID, schemes []*entities.Scheme) ([]*entities.Scheme, bool) {
	if u.matchCache == nil {
		return nil, false
	}

	ids, hit, err := u.matchCache.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Warn(ctx, "Match cache read failed", zap.Error(err))
		}
		return nil, false
	}
	if !hit {
		return nil, false
	}

	idSet := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	eligible := make([]*entities.Scheme, 0, len(ids))
	for _, s := range schemes {
		if _, ok := idSet[s.ID]; ok {
			eligible = append(eligible, s)
		}
	}
	return eligible, true
}
