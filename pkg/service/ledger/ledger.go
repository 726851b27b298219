// Package ledger serves an account's transaction history as seen by that account.
package ledger

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/repository"
)

const (
	// DefaultLimit applies when the caller asks for a non-positive number of entries.
	DefaultLimit = 20
	// MaxLimit caps a single page of history.
	MaxLimit = 100
)

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func NewService(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{uow: uow, logger: logger.With("service", "ledger")}
}

// ListTransactions returns the viewer's most recent entries, newest first, each
// projected with its direction and counterpart. It never mutates state.
func (s *Service) ListTransactions(
	ctx context.Context,
	viewerID int64,
	limit int,
) ([]ledger.View, error) {
	logger := s.logger.With("op", "ListTransactions", "viewerID", viewerID)
	limit = NormalizeLimit(limit)

	repo, err := s.uow.TransactionRepository()
	if err != nil {
		logger.Error("ListTransactions failed: repository error", "error", err)
		return nil, domain.ErrStorage
	}
	records, err := repo.ListByAccount(ctx, viewerID, limit)
	if err != nil {
		if domain.IsDomainError(err) {
			return nil, err
		}
		logger.Error("ListTransactions failed: storage error", "error", err)
		return nil, domain.ErrStorage
	}

	views := make([]ledger.View, 0, len(records))
	for _, r := range records {
		views = append(views, r.ViewFor(viewerID))
	}
	logger.Debug("ListTransactions successful", "count", len(views))
	return views, nil
}

// NormalizeLimit maps a requested page size into [1, MaxLimit].
func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}
