// Package ledger models append-only ledger entries and the per-viewer
// projection of them.
package ledger

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/money"
)

// Kind is the stored discriminant of an entry.
type Kind string

const (
	KindDeposit  Kind = "deposit"
	KindTransfer Kind = "transfer"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindDeposit || k == KindTransfer
}

// Entry is a ledger entry. It is either a DepositEntry or a TransferEntry.
type Entry interface {
	Kind() Kind
	// Origin and Destination are the account references written to the store.
	Origin() int64
	Destination() int64
	Amount() money.Amount
	At() time.Time
}

// DepositEntry records an unconditional balance increase of one account.
type DepositEntry struct {
	Account  int64
	Value    money.Amount
	Occurred time.Time
}

func (e DepositEntry) Kind() Kind           { return KindDeposit }
func (e DepositEntry) Origin() int64        { return e.Account }
func (e DepositEntry) Destination() int64   { return e.Account }
func (e DepositEntry) Amount() money.Amount { return e.Value }
func (e DepositEntry) At() time.Time        { return e.Occurred }

// TransferEntry records money moving from one account to another.
type TransferEntry struct {
	From     int64
	To       int64
	Value    money.Amount
	Occurred time.Time
}

func (e TransferEntry) Kind() Kind           { return KindTransfer }
func (e TransferEntry) Origin() int64        { return e.From }
func (e TransferEntry) Destination() int64   { return e.To }
func (e TransferEntry) Amount() money.Amount { return e.Value }
func (e TransferEntry) At() time.Time        { return e.Occurred }

// Validate checks the structural rules of an entry before it is appended.
func Validate(e Entry) error {
	if e.Amount() <= 0 {
		return domain.ErrInvalidAmount
	}
	switch e.Kind() {
	case KindDeposit:
		return nil
	case KindTransfer:
		if e.Origin() == e.Destination() {
			return domain.ErrSelfTransfer
		}
		return nil
	default:
		return domain.ErrValidation
	}
}

// NewDeposit returns a deposit entry stamped with the current UTC time.
func NewDeposit(accountID int64, amount money.Amount) DepositEntry {
	return DepositEntry{Account: accountID, Value: amount, Occurred: time.Now().UTC()}
}

// NewTransfer returns a transfer entry stamped with the current UTC time.
func NewTransfer(from, to int64, amount money.Amount) TransferEntry {
	return TransferEntry{From: from, To: to, Value: amount, Occurred: time.Now().UTC()}
}
