package repository

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/amirasaad/ledger/pkg/repository/transaction"
	"gorm.io/gorm"
)

// Flusher persists the full committed state of a store that has no native
// write-ahead durability. It runs after every committed unit of work.
type Flusher interface {
	Flush(ctx context.Context) error
}

// UoW provides transaction boundary and repository access in one abstraction.
// All repositories handed out inside Do share the unit's transaction session.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	flusher      Flusher
	logger       *slog.Logger
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// Option configures a UoW.
type Option func(*UoW)

// WithFlusher sets the post-commit flusher. Without one, commits rely on the
// backend's own durability.
func WithFlusher(f Flusher) Option {
	return func(u *UoW) { u.flusher = f }
}

// WithLogger sets the logger used to report flush failures.
func WithLogger(l *slog.Logger) Option {
	return func(u *UoW) { u.logger = l }
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB, opts ...Option) *UoW {
	u := &UoW{
		db:     db,
		logger: slog.Default(),
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*account.Repository)(nil)).Elem():     func(db *gorm.DB) any { return NewAccountRepository(db) },
			reflect.TypeOf((*transaction.Repository)(nil)).Elem(): func(db *gorm.DB) any { return NewTransactionRepository(db) },
		},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Do runs fn in a transaction boundary, providing a UoW bound to the transaction.
// Calling Do on a UoW that is already inside a unit joins that unit.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, logger: u.logger, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
	if err != nil {
		return err
	}
	if u.flusher != nil {
		// The unit is committed; a failed flush is retried by the next one
		// because every flush writes the full state.
		if ferr := u.flusher.Flush(context.WithoutCancel(ctx)); ferr != nil {
			u.logger.Error("flush after commit failed", "error", ferr)
		}
	}
	return nil
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// GetRepository provides generic, type-safe access to repositories using the current session.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	return constructor(u.session()), nil
}

// AccountRepository returns the account repository for the current session.
func (u *UoW) AccountRepository() (account.Repository, error) {
	repoAny, err := u.GetRepository(reflect.TypeOf((*account.Repository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(account.Repository), nil
}

// TransactionRepository returns the ledger repository for the current session.
func (u *UoW) TransactionRepository() (transaction.Repository, error) {
	repoAny, err := u.GetRepository(reflect.TypeOf((*transaction.Repository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(transaction.Repository), nil
}
