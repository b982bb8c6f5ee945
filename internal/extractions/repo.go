package extractions

import (
	"context"

	"idscan-backend/internal/extract"
)

// Repo defines the persistence sink for extracted records. Append is
// fire-and-forget: there is no idempotency key, so re-submitting the same
// document creates another row.
type Repo interface {
	Append(ctx context.Context, rec extract.Record) error
}
