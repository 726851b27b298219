package money_test

import (
	"testing"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDeposit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		amount  money.Amount
		wantErr bool
	}{
		{"zero", 0, true},
		{"negative", -5, true},
		{"minimum", 1, false},
		{"maximum", money.MaxDepositAmount, false},
		{"above maximum", money.MaxDepositAmount + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := money.ValidateDeposit(tt.amount)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateTransfer(t *testing.T) {
	t.Parallel()
	assert.NoError(t, money.ValidateTransfer(money.MaxTransferAmount))
	assert.ErrorIs(t, money.ValidateTransfer(money.MaxTransferAmount+1), domain.ErrInvalidAmount)
	assert.ErrorIs(t, money.ValidateTransfer(0), domain.ErrInvalidAmount)
	// transfer bound is tighter than deposit bound
	assert.Error(t, money.ValidateTransfer(money.MaxDepositAmount))
}

func TestAmountString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "100.00", money.Amount(10000).String())
	assert.Equal(t, "0.01", money.Amount(1).String())
	assert.Equal(t, "25.50", money.Amount(2550).String())
	assert.Equal(t, int64(2550), money.Amount(2550).Int64())
}

func TestParse(t *testing.T) {
	t.Parallel()
	a, err := money.Parse("25.50")
	require.NoError(t, err)
	assert.Equal(t, money.Amount(2550), a)

	a, err = money.Parse("7")
	require.NoError(t, err)
	assert.Equal(t, money.Amount(700), a)

	_, err = money.Parse("1.001")
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = money.Parse("abc")
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}
