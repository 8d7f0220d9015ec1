package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Sequence names, one per collection.
const (
	SeqAdmins        = "admins"
	SeqUsers         = "users"
	SeqProducts      = "products"
	SeqLocalProducts = "local_products"
)

// SequenceAllocator hands out monotonic integer ids from the counters
// table. The increment is a single atomic upsert, so two concurrent
// creates against the same collection can never observe the same value.
type SequenceAllocator struct {
	db *gorm.DB
}

// NewSequenceAllocator creates a sequence allocator on the given connection.
func NewSequenceAllocator(db *gorm.DB) *SequenceAllocator {
	return &SequenceAllocator{db: db}
}

// Next allocates the next id for the named collection. It is safe to
// call inside a transaction by constructing the allocator over the tx
// handle, which serializes the allocation with the row insert.
func (s *SequenceAllocator) Next(ctx context.Context, name string) (int64, error) {
	var id int64
	err := s.db.WithContext(ctx).Raw(
		`INSERT INTO counters (name, value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		 RETURNING value`,
		name,
	).Scan(&id).Error
	if err != nil {
		return 0, fmt.Errorf("failed to allocate id for %s: %w", name, err)
	}
	return id, nil
}
