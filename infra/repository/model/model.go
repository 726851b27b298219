package model

import "time"

// Account represents an account record in the database.
type Account struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	Name          string    `gorm:"size:50;not null"`
	Phone         string    `gorm:"size:20;not null;uniqueIndex:idx_accounts_phone"`
	Credential    string    `gorm:"size:255;not null"`
	Balance       int64     `gorm:"not null;default:0;check:chk_accounts_balance_non_negative,balance >= 0"`
	AccountNumber string    `gorm:"size:10;not null;uniqueIndex:idx_accounts_account_number"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// Transaction represents an append-only ledger entry.
// For deposits OriginAccountID equals DestinationAccountID.
type Transaction struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement"`
	OriginAccountID      int64     `gorm:"not null;index:idx_transactions_origin"`
	DestinationAccountID int64     `gorm:"not null;index:idx_transactions_destination"`
	Amount               int64     `gorm:"not null;check:chk_transactions_amount_positive,amount > 0"`
	Kind                 string    `gorm:"size:16;not null"`
	CreatedAt            time.Time `gorm:"not null;index:idx_transactions_created_at"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}

// All lists the models managed by schema migration.
func All() []any {
	return []any{&Account{}, &Transaction{}}
}
