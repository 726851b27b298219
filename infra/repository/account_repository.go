package repository

import (
	"context"
	"fmt"

	"github.com/amirasaad/ledger/infra/repository/model"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/money"
	repo "github.com/amirasaad/ledger/pkg/repository/account"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository bound to db, which may be a transaction session.
func NewAccountRepository(db *gorm.DB) repo.Repository {
	return &accountRepository{db: db}
}

// Create implements account.Repository.
func (r *accountRepository) Create(ctx context.Context, a *account.Account) (int64, error) {
	m := mapAccountToModel(a)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return 0, MapGormErrorToDomain(err)
	}
	return m.ID, nil
}

// Get implements account.Repository.
func (r *accountRepository) Get(ctx context.Context, id int64) (*account.Account, error) {
	var m model.Account
	if err := r.db.WithContext(ctx).Take(&m, "id = ?", id).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapModelToAccount(&m)
}

// GetByPhone implements account.Repository.
func (r *accountRepository) GetByPhone(ctx context.Context, phone string) (*account.Account, error) {
	var m model.Account
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).Take(&m).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapModelToAccount(&m)
}

// PhoneExists implements account.Repository.
func (r *accountRepository) PhoneExists(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, "phone = ?", phone)
}

// NumberExists implements account.Repository.
func (r *accountRepository) NumberExists(ctx context.Context, n account.Number) (bool, error) {
	return r.exists(ctx, "account_number = ?", string(n))
}

func (r *accountRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where(query, arg).
		Count(&count).Error; err != nil {
		return false, MapGormErrorToDomain(err)
	}
	return count > 0, nil
}

// Credit implements account.Repository.
func (r *accountRepository) Credit(ctx context.Context, id int64, amount money.Amount) error {
	res := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", id).
		Update("balance", gorm.Expr("balance + ?", amount.Int64()))
	if res.Error != nil {
		return MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected != 1 {
		return domain.ErrNotFound
	}
	return nil
}

// Debit implements account.Repository. The balance predicate and the
// decrement are one statement, so concurrent debits of the same row
// serialize on the row lock and re-evaluate the predicate.
func (r *accountRepository) Debit(ctx context.Context, id int64, amount money.Amount) error {
	res := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ? AND balance >= ?", id, amount.Int64()).
		Update("balance", gorm.Expr("balance - ?", amount.Int64()))
	if res.Error != nil {
		return MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected != 1 {
		return domain.ErrInsufficientBalance
	}
	return nil
}

// Balance implements account.Repository.
func (r *accountRepository) Balance(ctx context.Context, id int64) (money.Amount, error) {
	var m model.Account
	if err := r.db.WithContext(ctx).
		Select("id", "balance").
		Take(&m, "id = ?", id).Error; err != nil {
		return 0, MapGormErrorToDomain(err)
	}
	return money.Amount(m.Balance), nil
}

func mapAccountToModel(a *account.Account) model.Account {
	return model.Account{
		ID:            a.ID,
		Name:          a.Name,
		Phone:         a.Phone,
		Credential:    a.Credential,
		Balance:       a.Balance.Int64(),
		AccountNumber: string(a.Number),
		CreatedAt:     a.CreatedAt,
	}
}

// mapModelToAccount rebuilds the domain account through its builder, so a row
// that breaks an account invariant surfaces as a storage failure.
func mapModelToAccount(m *model.Account) (*account.Account, error) {
	a, err := account.New().
		WithID(m.ID).
		WithName(m.Name).
		WithPhone(m.Phone).
		WithCredential(m.Credential).
		WithNumber(account.Number(m.AccountNumber)).
		WithBalance(money.Amount(m.Balance)).
		WithCreatedAt(m.CreatedAt).
		Build()
	if err != nil {
		return nil, fmt.Errorf("corrupt account row %d: %v", m.ID, err)
	}
	return a, nil
}
