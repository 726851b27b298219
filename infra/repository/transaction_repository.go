package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amirasaad/ledger/infra/repository/model"
	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/domain/money"
	repo "github.com/amirasaad/ledger/pkg/repository/transaction"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a ledger repository bound to db, which may be a transaction session.
func NewTransactionRepository(db *gorm.DB) repo.Repository {
	return &transactionRepository{db: db}
}

// Append implements transaction.Repository.
func (r *transactionRepository) Append(ctx context.Context, e ledger.Entry) (int64, error) {
	if err := ledger.Validate(e); err != nil {
		return 0, err
	}
	m := model.Transaction{
		OriginAccountID:      e.Origin(),
		DestinationAccountID: e.Destination(),
		Amount:               e.Amount().Int64(),
		Kind:                 string(e.Kind()),
		CreatedAt:            e.At(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return 0, MapGormErrorToDomain(err)
	}
	return m.ID, nil
}

// recordRow is the flat shape of a ledger row joined with both parties.
type recordRow struct {
	ID               int64
	Kind             string
	Amount           int64
	CreatedAt        time.Time
	OriginID         int64
	OriginName       string
	OriginPhone      string
	DestinationID    int64
	DestinationName  string
	DestinationPhone string
}

// ListByAccount implements transaction.Repository.
func (r *transactionRepository) ListByAccount(
	ctx context.Context,
	accountID int64,
	limit int,
) ([]ledger.Record, error) {
	var rows []recordRow
	if err := r.db.WithContext(
		ctx,
	).Table(
		"transactions AS t",
	).Select(
		"t.id, t.kind, t.amount, t.created_at, " +
			"o.id AS origin_id, o.name AS origin_name, o.phone AS origin_phone, " +
			"d.id AS destination_id, d.name AS destination_name, d.phone AS destination_phone",
	).Joins(
		"JOIN accounts AS o ON o.id = t.origin_account_id",
	).Joins(
		"JOIN accounts AS d ON d.id = t.destination_account_id",
	).Where(
		"t.origin_account_id = ? OR t.destination_account_id = ?",
		accountID,
		accountID,
	).Order(
		"t.created_at DESC, t.id DESC",
	).Limit(
		limit,
	).Scan(
		&rows,
	).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	result := make([]ledger.Record, 0, len(rows))
	for i := range rows {
		rec, err := mapRowToRecord(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, nil
}

func mapRowToRecord(row *recordRow) (ledger.Record, error) {
	kind := ledger.Kind(row.Kind)
	if !kind.Valid() {
		return ledger.Record{}, fmt.Errorf("transaction %d: unknown kind %q", row.ID, row.Kind)
	}
	return ledger.Record{
		ID:        row.ID,
		Kind:      kind,
		Amount:    money.Amount(row.Amount),
		CreatedAt: row.CreatedAt,
		Origin: ledger.Party{
			ID:    row.OriginID,
			Name:  row.OriginName,
			Phone: row.OriginPhone,
		},
		Destination: ledger.Party{
			ID:    row.DestinationID,
			Name:  row.DestinationName,
			Phone: row.DestinationPhone,
		},
	}, nil
}
