package ledger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/ledger/internal/fixtures/mocks"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-3))
	assert.Equal(t, 7, NormalizeLimit(7))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+1))
}

func TestListTransactions_ProjectsForViewer(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	repo := mocks.NewMockTransactionRepository(t)
	uow.EXPECT().TransactionRepository().Return(repo, nil)

	ana := ledger.Party{ID: 1, Name: "Ana", Phone: "111111111"}
	bia := ledger.Party{ID: 2, Name: "Bia", Phone: "222222222"}
	now := time.Now().UTC()
	repo.EXPECT().ListByAccount(mock.Anything, int64(2), DefaultLimit).Return([]ledger.Record{
		{ID: 3, Kind: ledger.KindTransfer, Amount: 40, CreatedAt: now, Origin: ana, Destination: bia},
		{ID: 2, Kind: ledger.KindTransfer, Amount: 10, CreatedAt: now, Origin: bia, Destination: ana},
		{ID: 1, Kind: ledger.KindDeposit, Amount: 99, CreatedAt: now, Origin: bia, Destination: bia},
	}, nil)

	svc := NewService(uow, slog.New(slog.NewTextHandler(io.Discard, nil)))
	views, err := svc.ListTransactions(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, ledger.DirectionCredit, views[0].Direction)
	assert.Equal(t, "Ana", views[0].CounterpartName)
	assert.Equal(t, ledger.DirectionDebit, views[1].Direction)
	assert.Equal(t, "111111111", views[1].CounterpartPhone)
	assert.Equal(t, ledger.DirectionDeposit, views[2].Direction)
	assert.Equal(t, "Bia", views[2].CounterpartName)
}

func TestListTransactions_StorageError(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	repo := mocks.NewMockTransactionRepository(t)
	uow.EXPECT().TransactionRepository().Return(repo, nil)
	repo.EXPECT().ListByAccount(mock.Anything, int64(1), MaxLimit).Return(nil, errors.New("connection reset"))

	svc := NewService(uow, nil)
	_, err := svc.ListTransactions(context.Background(), 1, 1000)
	assert.Equal(t, domain.ErrStorage, err)
}
