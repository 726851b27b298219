package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "accounts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	id, err := repo.Create(context.Background(), &account.Account{
		Name:       "Ana",
		Phone:      "5511999990000",
		Credential: "hash",
		Number:     "4501123456",
		CreatedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_DebitIsConditional(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "accounts" SET "balance"=balance - $1 WHERE id = $2 AND balance >= $3`)).
		WithArgs(int64(500), int64(1), int64(500)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Debit(context.Background(), 1, money.Amount(500))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_DebitNoRowsIsInsufficient(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "accounts" SET "balance"=balance - $1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Debit(context.Background(), 1, money.Amount(500))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestAccountRepository_CreditMissingAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "accounts" SET "balance"=balance + $1 WHERE id = $2`)).
		WithArgs(int64(100), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Credit(context.Background(), 9, money.Amount(100))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountRepository_GetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE id = $1`)).
		WithArgs(int64(3), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Get(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountRepository_PhoneExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "accounts" WHERE phone = $1`)).
		WithArgs("5511999990000").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := repo.PhoneExists(context.Background(), "5511999990000")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTransactionRepository_AppendRejectsInvalidEntry(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	_, err := repo.Append(context.Background(), ledger.NewTransfer(1, 1, 100))
	assert.ErrorIs(t, err, domain.ErrSelfTransfer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_Append(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "transactions"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	id, err := repo.Append(context.Background(), ledger.NewTransfer(1, 2, 100))
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestTransactionRepository_ListByAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "kind", "amount", "created_at",
		"origin_id", "origin_name", "origin_phone",
		"destination_id", "destination_name", "destination_phone",
	}).AddRow(5, "transfer", 300, at, 1, "Ana", "111111111", 2, "Bia", "222222222")

	mock.ExpectQuery(`SELECT t.id, t.kind, t.amount.*FROM transactions AS t JOIN accounts AS o .*JOIN accounts AS d .*WHERE .*ORDER BY t.created_at DESC, t.id DESC LIMIT \$3`).
		WithArgs(int64(1), int64(1), 20).
		WillReturnRows(rows)

	records, err := repo.ListByAccount(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, ledger.KindTransfer, records[0].Kind)
	assert.Equal(t, money.Amount(300), records[0].Amount)
	assert.Equal(t, "Bia", records[0].Destination.Name)
	assert.Equal(t, ledger.DirectionDebit, records[0].ViewFor(1).Direction)
}

func accountRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "phone", "credential", "balance", "account_number", "created_at",
	})
}

func TestAccountRepository_GetHydrates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE id = $1`)).
		WithArgs(int64(4), 1).
		WillReturnRows(accountRows().AddRow(4, "Ana", "+5511999990000", "hash", 1500, "4501123456", at))

	a, err := repo.Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), a.ID)
	assert.Equal(t, money.Amount(1500), a.Balance)
	assert.Equal(t, account.Number("4501123456"), a.Number)
	assert.Equal(t, at, a.CreatedAt)
}

func TestAccountRepository_GetRejectsCorruptRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE phone = $1`)).
		WithArgs("+5511999990000", 1).
		WillReturnRows(accountRows().AddRow(4, "Ana", "+5511999990000", "hash", -1, "4501123456", time.Now()))

	_, err := repo.GetByPhone(context.Background(), "+5511999990000")
	require.Error(t, err)
	assert.False(t, domain.IsDomainError(err), "corrupt rows are storage failures, got %v", err)
}

func TestTransactionRepository_ListRejectsUnknownKind(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "kind", "amount", "created_at",
		"origin_id", "origin_name", "origin_phone",
		"destination_id", "destination_name", "destination_phone",
	}).AddRow(6, "withdrawal", 300, time.Now(), 1, "Ana", "111111111", 1, "Ana", "111111111")

	mock.ExpectQuery(`SELECT t.id, t.kind, t.amount.*FROM transactions AS t`).
		WithArgs(int64(1), int64(1), 20).
		WillReturnRows(rows)

	_, err := repo.ListByAccount(context.Background(), 1, 20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown kind "withdrawal"`)
}
