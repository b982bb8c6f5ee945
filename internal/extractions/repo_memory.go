package extractions

import (
	"context"
	"sync"

	"idscan-backend/internal/extract"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database is
// configured and in tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	rows []extract.Record
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Append stores the record.
func (r *MemoryRepo) Append(ctx context.Context, rec extract.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, rec)
	return nil
}

// All returns a copy of the stored records, oldest first.
func (r *MemoryRepo) All() []extract.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]extract.Record(nil), r.rows...)
}

var _ Repo = (*MemoryRepo)(nil)
