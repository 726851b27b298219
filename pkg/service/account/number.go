package account

import (
	"context"
	"math/rand/v2"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	repoaccount "github.com/amirasaad/ledger/pkg/repository/account"
)

// MaxAllocationAttempts bounds how many random numbers are tried per account.
const MaxAllocationAttempts = 100

// NumberAllocator draws uniformly random account numbers until it finds one
// that is not yet allocated.
type NumberAllocator struct {
	maxAttempts int
	suffix      func() int
}

// NewNumberAllocator returns an allocator over the full suffix range.
func NewNumberAllocator() *NumberAllocator {
	return &NumberAllocator{maxAttempts: MaxAllocationAttempts, suffix: randomSuffix}
}

func randomSuffix() int {
	return account.MinNumberSuffix + rand.IntN(account.MaxNumberSuffix-account.MinNumberSuffix+1)
}

// Allocate returns a free account number. repo must be bound to the unit of
// work that inserts the account, so the check and the insert commit together;
// the unique index on account_number backs it up.
func (a *NumberAllocator) Allocate(ctx context.Context, repo repoaccount.Repository) (account.Number, error) {
	for range a.maxAttempts {
		n, err := account.NewNumber(a.suffix())
		if err != nil {
			return "", err
		}
		taken, err := repo.NumberExists(ctx, n)
		if err != nil {
			return "", err
		}
		if !taken {
			return n, nil
		}
	}
	return "", domain.ErrAllocationExhausted
}
