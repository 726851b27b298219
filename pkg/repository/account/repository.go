package account

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/money"
)

// Repository defines account data access. Balance changes are only exposed as
// relative, single-statement writes so that check and update cannot be split.
type Repository interface {
	// Create inserts a new account with a zero balance and returns the generated id.
	Create(ctx context.Context, a *account.Account) (int64, error)

	// Get retrieves an account by id. Returns domain.ErrNotFound when absent.
	Get(ctx context.Context, id int64) (*account.Account, error)

	// GetByPhone retrieves an account by its normalized phone number.
	GetByPhone(ctx context.Context, phone string) (*account.Account, error)

	// PhoneExists reports whether a phone number is already registered.
	PhoneExists(ctx context.Context, phone string) (bool, error)

	// NumberExists reports whether an account number is already allocated.
	NumberExists(ctx context.Context, n account.Number) (bool, error)

	// Credit adds amount to the balance. Returns domain.ErrNotFound if no row changed.
	Credit(ctx context.Context, id int64, amount money.Amount) error

	// Debit subtracts amount only where balance >= amount. Returns
	// domain.ErrInsufficientBalance if no row changed.
	Debit(ctx context.Context, id int64, amount money.Amount) error

	// Balance reads the current balance.
	Balance(ctx context.Context, id int64) (money.Amount, error)
}
