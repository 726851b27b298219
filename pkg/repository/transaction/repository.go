package transaction

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/ledger"
)

// Repository defines access to the append-only ledger.
type Repository interface {
	// Append stores an entry and returns its generated id. Entries are never updated or deleted.
	Append(ctx context.Context, e ledger.Entry) (int64, error)

	// ListByAccount returns up to limit entries where the account is origin or
	// destination, most recent first (created_at DESC, id DESC), joined with both parties.
	ListByAccount(ctx context.Context, accountID int64, limit int) ([]ledger.Record, error)
}
