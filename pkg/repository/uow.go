package repository

import (
	"context"
	"reflect"

	"github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/amirasaad/ledger/pkg/repository/transaction"
)

// UnitOfWork is the atomic-unit contract over the relational store.
//
// Do runs fn so that either every read and write it performs commits or none
// do. Any error returned by fn, a panic, or cancellation of ctx rolls the unit
// back. Backends that lack native durability persist their full state after
// each committed unit before Do returns.
//
// Repositories obtained from the UnitOfWork passed to fn are bound to the
// unit's transaction. Repositories obtained outside Do read committed state.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested interface type, bound to the current session.
	//   repoAny, err := uow.GetRepository(reflect.TypeOf((*account.Repository)(nil)).Elem())
	GetRepository(repoType reflect.Type) (any, error)

	AccountRepository() (account.Repository, error)
	TransactionRepository() (transaction.Repository, error)
}
