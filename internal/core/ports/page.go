package ports

// Page is the envelope returned by every paginated listing.
type Page[T any] struct {
	TotalItems  int64 `json:"total_items"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	Items       []T   `json:"items"`
}

// NewPage computes the page arithmetic for a listing result.
func NewPage[T any](items []T, total int64, page, size int) Page[T] {
	if size <= 0 {
		size = 10
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		TotalItems:  total,
		CurrentPage: page,
		TotalPages:  totalPages,
		Items:       items,
	}
}
