package usecase

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PageRequest selects one page of a search result. Page is zero-based.
type PageRequest struct {
	Page int `json:"page" query:"page" validate:"gte=0"`
	Size int `json:"size" query:"size" validate:"gte=0,lte=100"`
}

// Normalize clamps the request to sane bounds.
func (p PageRequest) Normalize() PageRequest {
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	if p.Page < 0 {
		p.Page = 0
	}

	return p
}

// Offset returns the row offset of the requested page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one page of results plus the pagination envelope.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// NewPage assembles the envelope for one page of items.
func NewPage[T any](items []T, req PageRequest, total int64) *Page[T] {
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	return &Page[T]{
		Items:      items,
		Page:       req.Page,
		Size:       req.Size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
