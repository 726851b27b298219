package dto

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/money"
)

// AccountRead is a read-optimized DTO for account queries. It never carries the credential.
type AccountRead struct {
	ID        int64
	Name      string
	Phone     string
	Number    account.Number
	Balance   money.Amount
	CreatedAt time.Time
}

// AccountCreated is returned by account registration.
type AccountCreated struct {
	ID     int64
	Number account.Number
}

// TransferResult is returned by a committed transfer.
type TransferResult struct {
	NewBalance   money.Amount
	ReceiverName string
}

// FromAccount maps a domain account to its read DTO.
func FromAccount(a *account.Account) *AccountRead {
	if a == nil {
		return nil
	}
	return &AccountRead{
		ID:        a.ID,
		Name:      a.Name,
		Phone:     a.Phone,
		Number:    a.Number,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
	}
}
