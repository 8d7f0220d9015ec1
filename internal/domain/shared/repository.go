package shared

import "context"

// Repository is the base interface for all repositories
type Repository[T any] interface {
	FindByID(ctx context.Context, id int64) (*T, error)
	FindPage(ctx context.Context, filter Filter) ([]T, int64, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int64) error
}

const (
	// DefaultLimit is the page size applied when the caller requests none.
	DefaultLimit = 10
	// MaxLimit caps the page size regardless of what the caller asks for.
	MaxLimit = 100
)

// Filter represents list query options. Search matches when any of the
// resource's searchable string fields contains the term as a
// case-insensitive substring.
type Filter struct {
	Page   int
	Limit  int
	Search string
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:  1,
		Limit: DefaultLimit,
	}
}

// Normalize clamps the filter into its valid range: page floors at 1,
// limit defaults when non-positive and never exceeds MaxLimit.
func (f Filter) Normalize() Filter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f
}

// Offset returns the number of records to skip for the current page.
func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Paginated represents one page of a filtered, id-ordered result set.
type Paginated[T any] struct {
	Items       []T
	CurrentPage int
	TotalPages  int
	TotalItems  int64
	HasNextPage bool
	HasPrevPage bool
	Limit       int
}

// NewPaginated assembles a page envelope. TotalPages uses ceiling
// division and is zero for an empty result set; HasNextPage and
// HasPrevPage derive from the page position, so both are false when
// nothing matched.
func NewPaginated[T any](items []T, total int64, page, limit int) Paginated[T] {
	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}
	if items == nil {
		items = make([]T, 0)
	}
	return Paginated[T]{
		Items:       items,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1 && totalPages > 0,
		Limit:       limit,
	}
}
