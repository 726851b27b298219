package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/amirasaad/ledger/pkg/repository/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type countingFlusher struct {
	calls int
	err   error
}

func (f *countingFlusher) Flush(context.Context) error {
	f.calls++
	return f.err
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestUoW_DoAndGetRepository(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)

	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		repoAny, err := txUow.GetRepository(reflect.TypeOf((*account.Repository)(nil)).Elem())
		require.NoError(err)
		_, ok := repoAny.(*accountRepository)
		assert.True(ok)

		repoAny, err = txUow.GetRepository(reflect.TypeOf((*transaction.Repository)(nil)).Elem())
		require.NoError(err)
		_, ok = repoAny.(*transactionRepository)
		assert.True(ok)
		return nil
	})
	assert.NoError(err)
	assert.NoError(mock.ExpectationsWereMet())
}

func TestUoW_GetRepositoryUnsupported(t *testing.T) {
	db, _ := newMockDB(t)
	uow := NewUoW(db)

	_, err := uow.GetRepository(reflect.TypeOf(""))
	assert.Error(t, err)
}

func TestUoW_TypeSafeMethods(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)

	uow := NewUoW(db)

	accountRepo, err := uow.AccountRepository()
	require.NoError(err)
	assert.NotNil(accountRepo)

	transactionRepo, err := uow.TransactionRepository()
	require.NoError(err)
	assert.NotNil(transactionRepo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err = uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		accountRepo, err := txUow.AccountRepository()
		require.NoError(err)
		assert.NotNil(accountRepo)

		transactionRepo, err := txUow.TransactionRepository()
		require.NoError(err)
		assert.NotNil(transactionRepo)
		return nil
	})
	assert.NoError(err)
}

func TestUoW_FlushAfterCommit(t *testing.T) {
	db, mock := newMockDB(t)
	flusher := &countingFlusher{}
	uow := NewUoW(db, WithFlusher(flusher))

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(repository.UnitOfWork) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, 1, flusher.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_RollbackSkipsFlush(t *testing.T) {
	db, mock := newMockDB(t)
	flusher := &countingFlusher{}
	uow := NewUoW(db, WithFlusher(flusher))
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := uow.Do(context.Background(), func(repository.UnitOfWork) error { return boom })
	require.ErrorIs(t, err, boom)
	assert.Zero(t, flusher.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_FlushFailureDoesNotFailCommit(t *testing.T) {
	db, mock := newMockDB(t)
	flusher := &countingFlusher{err: errors.New("disk full")}
	uow := NewUoW(db, WithFlusher(flusher))

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(repository.UnitOfWork) error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, 1, flusher.calls)
}

func TestUoW_NestedDoJoinsUnit(t *testing.T) {
	db, mock := newMockDB(t)
	flusher := &countingFlusher{}
	uow := NewUoW(db, WithFlusher(flusher))

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(outer repository.UnitOfWork) error {
		return outer.Do(context.Background(), func(repository.UnitOfWork) error { return nil })
	})
	require.NoError(t, err)
	assert.Equal(t, 1, flusher.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
