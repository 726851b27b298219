package account

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/money"
)

// MaxNameLength bounds the display name.
const MaxNameLength = 50

// Account is a registered account holder and its balance.
//
// Invariants:
//   - Balance is never negative.
//   - Phone and Number are globally unique (enforced by the store).
//   - Credential is opaque to the engine; it is owned by the auth collaborator.
type Account struct {
	ID         int64
	Name       string
	Phone      string
	Credential string
	Balance    money.Amount
	Number     Number
	CreatedAt  time.Time
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	id         int64
	name       string
	phone      string
	credential string
	balance    money.Amount
	number     Number
	createdAt  time.Time
}

// New creates a new Builder with a zero balance and the current time.
func New() *Builder {
	return &Builder{createdAt: time.Now().UTC()}
}

// WithID sets the ID. Used when hydrating from the store.
func (b *Builder) WithID(id int64) *Builder {
	b.id = id
	return b
}

// WithName sets the display name.
func (b *Builder) WithName(name string) *Builder {
	b.name = strings.TrimSpace(name)
	return b
}

// WithPhone sets the phone number. It is normalized on Build.
func (b *Builder) WithPhone(phone string) *Builder {
	b.phone = phone
	return b
}

// WithCredential sets the opaque credential.
func (b *Builder) WithCredential(credential string) *Builder {
	b.credential = credential
	return b
}

// WithNumber sets the allocated account number.
func (b *Builder) WithNumber(n Number) *Builder {
	b.number = n
	return b
}

// WithBalance sets the balance. This should only be used
// for hydrating an existing account from a data store or for test setup.
func (b *Builder) WithBalance(balance money.Amount) *Builder {
	b.balance = balance
	return b
}

// WithCreatedAt sets the creation timestamp.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// Build validates the registration fields and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if err := ValidateName(b.name); err != nil {
		return nil, err
	}
	phone, err := NormalizePhone(b.phone)
	if err != nil {
		return nil, err
	}
	if b.credential == "" {
		return nil, domain.ErrInvalidCredential
	}
	if b.balance < 0 {
		return nil, domain.ErrInsufficientBalance
	}
	if b.number != "" && !b.number.Valid() {
		return nil, domain.ErrValidation
	}
	return &Account{
		ID:         b.id,
		Name:       b.name,
		Phone:      phone,
		Credential: b.credential,
		Balance:    b.balance,
		Number:     b.number,
		CreatedAt:  b.createdAt,
	}, nil
}

// ValidateName checks the display name length.
func ValidateName(name string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n == 0 || n > MaxNameLength {
		return domain.ErrInvalidName
	}
	return nil
}

// CanDebit reports whether the balance covers amount.
// The store re-checks this in the same statement that debits.
func (a *Account) CanDebit(amount money.Amount) bool {
	return a.Balance >= amount
}
