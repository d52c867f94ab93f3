package utils

import "strconv"

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ParsePagination parses limit/offset query values with sane bounds
func ParsePagination(limitStr, offsetStr string) (limit, offset int) {
	limit = DefaultLimit
	if limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	if offsetStr != "" {
		if v, err := strconv.Atoi(offsetStr); err == nil && v >= 0 {
			offset = v
		}
	}
	return limit, offset
}
