package ledger_test

import (
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryKinds(t *testing.T) {
	t.Parallel()
	d := ledger.NewDeposit(7, 10000)
	assert.Equal(t, ledger.KindDeposit, d.Kind())
	assert.Equal(t, int64(7), d.Origin())
	assert.Equal(t, int64(7), d.Destination())
	assert.Equal(t, time.UTC, d.At().Location())

	tr := ledger.NewTransfer(1, 2, 2500)
	assert.Equal(t, ledger.KindTransfer, tr.Kind())
	assert.Equal(t, int64(1), tr.Origin())
	assert.Equal(t, int64(2), tr.Destination())
}

func TestValidate(t *testing.T) {
	t.Parallel()
	require.NoError(t, ledger.Validate(ledger.NewDeposit(1, 1)))
	require.NoError(t, ledger.Validate(ledger.NewTransfer(1, 2, 1)))
	require.ErrorIs(t, ledger.Validate(ledger.NewDeposit(1, 0)), domain.ErrInvalidAmount)
	require.Error(t, ledger.Validate(ledger.NewTransfer(3, 3, 10)))
	assert.True(t, ledger.KindTransfer.Valid())
	assert.False(t, ledger.Kind("withdraw").Valid())
}

func TestRecordViewFor(t *testing.T) {
	t.Parallel()
	alice := ledger.Party{ID: 1, Name: "Alice", Phone: "01000000001"}
	bob := ledger.Party{ID: 2, Name: "Bob", Phone: "01000000002"}

	deposit := ledger.Record{ID: 10, Kind: ledger.KindDeposit, Amount: 10000, Origin: alice, Destination: alice}
	v := deposit.ViewFor(alice.ID)
	assert.Equal(t, ledger.DirectionDeposit, v.Direction)
	assert.Equal(t, "Alice", v.CounterpartName)
	assert.Equal(t, alice.Phone, v.CounterpartPhone)

	transfer := ledger.Record{ID: 11, Kind: ledger.KindTransfer, Amount: 2500, Origin: alice, Destination: bob}
	sent := transfer.ViewFor(alice.ID)
	assert.Equal(t, ledger.DirectionDebit, sent.Direction)
	assert.Equal(t, "Bob", sent.CounterpartName)

	received := transfer.ViewFor(bob.ID)
	assert.Equal(t, ledger.DirectionCredit, received.Direction)
	assert.Equal(t, "Alice", received.CounterpartName)
	assert.Equal(t, alice.Phone, received.CounterpartPhone)
	assert.Equal(t, sent.ID, received.ID)
}
