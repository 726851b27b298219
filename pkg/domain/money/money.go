// Package money holds the fixed-point amount type used for balances and ledger entries.
package money

import (
	"math"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/shopspring/decimal"
)

// Amount is a monetary amount in the smallest currency unit.
type Amount int64

// Scale is the number of minor-unit digits shown when an Amount is rendered.
const Scale = 2

const (
	// MinOperationAmount is the smallest deposit or transfer accepted.
	MinOperationAmount Amount = 1
	// MaxDepositAmount bounds a single deposit.
	MaxDepositAmount Amount = 10_000_000
	// MaxTransferAmount bounds a single transfer.
	MaxTransferAmount Amount = 1_000_000
)

// ValidateDeposit checks a deposit amount against the accepted range.
func ValidateDeposit(a Amount) error {
	return validateRange(a, MaxDepositAmount)
}

// ValidateTransfer checks a transfer amount against the accepted range.
func ValidateTransfer(a Amount) error {
	return validateRange(a, MaxTransferAmount)
}

func validateRange(a, upper Amount) error {
	if a < MinOperationAmount || a > upper {
		return domain.ErrInvalidAmount
	}
	return nil
}

// Int64 returns the raw minor-unit value.
func (a Amount) Int64() int64 {
	return int64(a)
}

// Decimal returns the amount in major units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -Scale)
}

// String renders the amount in major units with a fixed number of decimals.
func (a Amount) String() string {
	return a.Decimal().StringFixed(Scale)
}

// Parse reads a major-unit decimal string (e.g. "25.00") into an Amount.
// Inputs with more precision than Scale are rejected.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, domain.ErrInvalidAmount
	}
	minor := d.Shift(Scale)
	if !minor.IsInteger() || minor.Abs().GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, domain.ErrInvalidAmount
	}
	return Amount(minor.IntPart()), nil
}
