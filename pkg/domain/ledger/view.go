package ledger

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/money"
)

// Direction is how an entry looks from one account's point of view.
type Direction string

const (
	DirectionDeposit Direction = "deposit"
	DirectionDebit   Direction = "debit"
	DirectionCredit  Direction = "credit"
)

// Party is the identity of one side of an entry.
type Party struct {
	ID    int64
	Name  string
	Phone string
}

// Record is a stored entry joined with both parties.
type Record struct {
	ID          int64
	Kind        Kind
	Amount      money.Amount
	CreatedAt   time.Time
	Origin      Party
	Destination Party
}

// View is a Record projected for a single viewer.
type View struct {
	ID               int64
	Amount           money.Amount
	CreatedAt        time.Time
	Kind             Kind
	Direction        Direction
	CounterpartName  string
	CounterpartPhone string
}

// ViewFor projects r for viewerID. Deposits show the viewer as their own
// counterpart; transfers show the other party.
func (r Record) ViewFor(viewerID int64) View {
	v := View{
		ID:        r.ID,
		Amount:    r.Amount,
		CreatedAt: r.CreatedAt,
		Kind:      r.Kind,
	}
	switch {
	case r.Kind == KindDeposit:
		v.Direction = DirectionDeposit
		v.CounterpartName, v.CounterpartPhone = r.Destination.Name, r.Destination.Phone
	case r.Origin.ID == viewerID:
		v.Direction = DirectionDebit
		v.CounterpartName, v.CounterpartPhone = r.Destination.Name, r.Destination.Phone
	default:
		v.Direction = DirectionCredit
		v.CounterpartName, v.CounterpartPhone = r.Origin.Name, r.Origin.Phone
	}
	return v
}
