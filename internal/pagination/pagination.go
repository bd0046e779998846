// Package pagination converts page/limit requests into offset/limit
// values and builds response metadata for list endpoints.
package pagination

// DefaultPublicLimit is the page size for public listings when the
// caller does not supply one.
const DefaultPublicLimit = 9

// maxLimit caps the page size a caller may request.
const maxLimit = 100

// Params holds the resolved limit and offset for a list query.
type Params struct {
	Page   int
	Limit  int
	Offset int
}

// Meta is the pagination metadata attached to list responses.
type Meta struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// New coerces page and limit into positive values, falling back to page
// 1 and defaultLimit, and computes the row offset. A non-positive limit
// is never divided by: it is replaced by the default, and oversized
// limits are clamped.
func New(page, limit, defaultLimit int) Params {
	if defaultLimit <= 0 {
		defaultLimit = DefaultPublicLimit
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// NewMeta builds response metadata for totalCount rows under the given
// page and limit. Limit must be positive; New guarantees that for any
// Params it produced.
func NewMeta(totalCount int64, page, limit int) Meta {
	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))
	return Meta{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
