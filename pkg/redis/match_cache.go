package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MatchCache stores the eligible scheme IDs computed for a user profile so a
// repeat dashboard load skips re-evaluating the full catalog. Entries are
// invalidated whenever the profile's matching attributes change.
type MatchCache struct {
	ttl time.Duration
}

var (
	setMatchValue = Set
	getMatchValue = Get
	delMatchValue = Del
)

// NewMatchCache creates a match cache with the given entry TTL
func NewMatchCache(ttl time.Duration) *MatchCache {
	return &MatchCache{ttl: ttl}
}

func matchKey(userID uuid.UUID) string {
	return "match:" + userID.String()
}

// Put stores the eligible scheme IDs for a user
func (c *MatchCache) Put(ctx context.Context, userID uuid.UUID, schemeIDs []uuid.UUID) error {
	payload, err := json.Marshal(schemeIDs)
	if err != nil {
		return err
	}
	return setMatchValue(ctx, matchKey(userID), string(payload), c.ttl)
}

// Get retrieves cached eligible scheme IDs for a user. The second return is
// false on a miss.
func (c *MatchCache) Get(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, bool, error) {
	raw, err := getMatchValue(ctx, matchKey(userID))
	if err != nil {
		if err.Error() == "redis: nil" {
			return nil, false, nil
		}
		return nil, false, err
	}

	var ids []uuid.UUID
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, false, err
	}
	return ids, true, nil
}

// Invalidate drops the cached match list for a user
func (c *MatchCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return delMatchValue(ctx, matchKey(userID))
}
