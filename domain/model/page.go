package model

// Page is the envelope a paginated aggregation resolves to. TotalDocs is
// counted over the unpaginated pipeline, so a page past the end still reports
// the correct totals with empty Docs.
type Page[T any] struct {
	Docs        []T   `json:"docs"`
	TotalDocs   int64 `json:"totalDocs"`
	Limit       int64 `json:"limit"`
	Page        int64 `json:"page"`
	TotalPages  int64 `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPage computes the derived pagination fields for a fetched window.
// Out-of-range page and limit values are clamped so the arithmetic is safe
// even for callers that bypass the query normalization.
func NewPage[T any](docs []T, totalDocs, page, limit int64) *Page[T] {
	if docs == nil {
		docs = []T{}
	}
	if limit < 1 {
		limit = 1
	}
	if page < 1 {
		page = 1
	}
	totalPages := totalDocs / limit
	if totalDocs%limit != 0 {
		totalPages++
	}
	return &Page[T]{
		Docs:        docs,
		TotalDocs:   totalDocs,
		Limit:       limit,
		Page:        page,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
