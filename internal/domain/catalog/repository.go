package catalog

import "github.com/tabledash/backend/internal/domain/shared"

// ProductRepository defines persistence operations for products.
// FindPage orders by ascending id and searches title and brand as
// case-insensitive substrings.
type ProductRepository interface {
	shared.Repository[Product]
}

// LocalProductRepository defines persistence operations for local
// products with the same paging and search semantics as products.
type LocalProductRepository interface {
	shared.Repository[LocalProduct]
}
