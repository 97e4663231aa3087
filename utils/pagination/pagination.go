// Package pagination implements the limit/offset contract shared by all
// search endpoints. Bounds are enforced here, before any storage access.
package pagination

import (
	"fmt"

	"mise/utils/errors"
)

const (
	// DefaultLimit applies when a request omits the limit parameter.
	DefaultLimit = 20
	// MaxLimit is the hard ceiling for any single page.
	MaxLimit = 100
)

// Page carries the pagination metadata attached to a result set.
type Page struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// Validate rejects out-of-bounds limit/offset pairs with a validation
// error so no storage call is made for a malformed request.
func Validate(limit, offset int) error {
	if limit < 1 || limit > MaxLimit {
		return errors.ValidationError(
			fmt.Sprintf("limit must be between 1 and %d", MaxLimit),
			map[string]interface{}{"field": "limit", "value": limit},
		)
	}
	if offset < 0 {
		return errors.ValidationError(
			"offset must not be negative",
			map[string]interface{}{"field": "offset", "value": offset},
		)
	}
	return nil
}

// HasMore reports whether records exist beyond the returned page.
// The value is always derived, never stored.
func HasMore(total, offset, returned int) bool {
	return offset+returned < total
}

// NewPage builds Page metadata from a completed query.
func NewPage(total, limit, offset, returned int) Page {
	return Page{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: HasMore(total, offset, returned),
	}
}
