// Package account orchestrates account registration, deposits and transfers.
// Every mutating operation runs in exactly one unit of work; a rejected
// operation leaves no trace in the store.
package account

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/observability"
	"github.com/amirasaad/ledger/pkg/repository"
	repoaccount "github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/amirasaad/ledger/pkg/repository/transaction"
)

// Service provides the account operations of the engine.
type Service struct {
	uow     repository.UnitOfWork
	numbers *NumberAllocator
	logger  *slog.Logger
}

// NewService creates a new Service with the provided dependencies.
func NewService(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		uow:     uow,
		numbers: NewNumberAllocator(),
		logger:  logger.With("service", "account"),
	}
}

// CreateAccount registers a new account with a zero balance and a freshly
// allocated account number.
func (s *Service) CreateAccount(
	ctx context.Context,
	name, phone, credential string,
) (created *dto.AccountCreated, err error) {
	logger := s.logger.With("op", "CreateAccount")
	logger.Info("CreateAccount started")
	defer func() { observability.Observe(observability.OpCreateAccount, 0, err) }()

	a, err := account.New().
		WithName(name).
		WithPhone(phone).
		WithCredential(credential).
		Build()
	if err != nil {
		logger.Warn("CreateAccount rejected", "error", err)
		return nil, err
	}
	logger = logger.With("phone", a.Phone)

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		taken, err := repo.PhoneExists(ctx, a.Phone)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrPhoneTaken
		}
		a.Number, err = s.numbers.Allocate(ctx, repo)
		if err != nil {
			return err
		}
		id, err := repo.Create(ctx, a)
		if err != nil {
			return err
		}
		created = &dto.AccountCreated{ID: id, Number: a.Number}
		return nil
	})
	if errors.Is(err, domain.ErrAlreadyExists) && !errors.Is(err, domain.ErrPhoneTaken) {
		err = s.insertConflict(ctx, logger, a.Phone)
	}
	if err != nil {
		return nil, s.classify(logger, "CreateAccount", err)
	}
	logger.Info("CreateAccount successful", "accountID", created.ID, "number", created.Number)
	return created, nil
}

// insertConflict names the unique index a racing registration hit. It reads
// outside the failed unit, which Postgres has already aborted.
func (s *Service) insertConflict(ctx context.Context, logger *slog.Logger, phone string) error {
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return err
	}
	taken, err := repo.PhoneExists(ctx, phone)
	if err != nil {
		logger.Warn("CreateAccount conflict lookup failed", "error", err)
		return domain.ErrAlreadyExists
	}
	if taken {
		return domain.ErrPhoneTaken
	}
	return domain.ErrNumberTaken
}

// GetAccountByID returns the account with the given id.
func (s *Service) GetAccountByID(ctx context.Context, id int64) (*dto.AccountRead, error) {
	logger := s.logger.With("op", "GetAccountByID", "accountID", id)
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, s.classify(logger, "GetAccountByID", err)
	}
	a, err := repo.Get(ctx, id)
	if err != nil {
		return nil, s.classify(logger, "GetAccountByID", err)
	}
	return dto.FromAccount(a), nil
}

// GetAccountByPhone resolves a phone number, in any accepted notation, to its account.
func (s *Service) GetAccountByPhone(ctx context.Context, phone string) (*dto.AccountRead, error) {
	logger := s.logger.With("op", "GetAccountByPhone")
	normalized, err := account.NormalizePhone(phone)
	if err != nil {
		return nil, err
	}
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, s.classify(logger, "GetAccountByPhone", err)
	}
	a, err := repo.GetByPhone(ctx, normalized)
	if err != nil {
		return nil, s.classify(logger, "GetAccountByPhone", err)
	}
	return dto.FromAccount(a), nil
}

// Deposit credits amount to the account and records a deposit entry.
// It returns the balance after the deposit.
func (s *Service) Deposit(
	ctx context.Context,
	accountID int64,
	amount money.Amount,
) (balance money.Amount, err error) {
	logger := s.logger.With("op", "Deposit", "accountID", accountID, "amount", amount.String())
	logger.Info("Deposit started")
	defer func() { observability.Observe(observability.OpDeposit, amount, err) }()

	if err = money.ValidateDeposit(amount); err != nil {
		logger.Warn("Deposit rejected", "error", err)
		return 0, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, entries, err := repositories(uow)
		if err != nil {
			return err
		}
		if err := accounts.Credit(ctx, accountID, amount); err != nil {
			return err
		}
		if _, err := entries.Append(ctx, ledger.NewDeposit(accountID, amount)); err != nil {
			return err
		}
		balance, err = accounts.Balance(ctx, accountID)
		return err
	})
	if err != nil {
		return 0, s.classify(logger, "Deposit", err)
	}
	logger.Info("Deposit successful", "balance", balance.String())
	return balance, nil
}

// Transfer moves amount from the sender to the account registered under
// receiverPhone. The debit only applies while the sender's balance covers it,
// so concurrent transfers can never overdraw the sender.
func (s *Service) Transfer(
	ctx context.Context,
	senderID int64,
	receiverPhone string,
	amount money.Amount,
) (result *dto.TransferResult, err error) {
	logger := s.logger.With("op", "Transfer", "senderID", senderID, "amount", amount.String())
	logger.Info("Transfer started")
	defer func() { observability.Observe(observability.OpTransfer, amount, err) }()

	if err = money.ValidateTransfer(amount); err != nil {
		logger.Warn("Transfer rejected", "error", err)
		return nil, err
	}
	phone, err := account.NormalizePhone(receiverPhone)
	if err != nil {
		logger.Warn("Transfer rejected", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, entries, err := repositories(uow)
		if err != nil {
			return err
		}
		sender, err := accounts.Get(ctx, senderID)
		if err != nil {
			return err
		}
		receiver, err := accounts.GetByPhone(ctx, phone)
		if err != nil {
			return err
		}
		if receiver.ID == sender.ID {
			return domain.ErrSelfTransfer
		}
		if !sender.CanDebit(amount) {
			return domain.ErrInsufficientBalance
		}

		// Rows are locked in ascending id order so that two opposite
		// transfers cannot deadlock.
		if receiver.ID < sender.ID {
			if err := accounts.Credit(ctx, receiver.ID, amount); err != nil {
				return err
			}
			if err := accounts.Debit(ctx, sender.ID, amount); err != nil {
				return err
			}
		} else {
			if err := accounts.Debit(ctx, sender.ID, amount); err != nil {
				return err
			}
			if err := accounts.Credit(ctx, receiver.ID, amount); err != nil {
				return err
			}
		}

		if _, err := entries.Append(ctx, ledger.NewTransfer(sender.ID, receiver.ID, amount)); err != nil {
			return err
		}
		newBalance, err := accounts.Balance(ctx, sender.ID)
		if err != nil {
			return err
		}
		result = &dto.TransferResult{NewBalance: newBalance, ReceiverName: receiver.Name}
		return nil
	})
	if err != nil {
		return nil, s.classify(logger, "Transfer", err)
	}
	logger.Info("Transfer successful", "receiver", result.ReceiverName, "balance", result.NewBalance.String())
	return result, nil
}

func repositories(uow repository.UnitOfWork) (repoaccount.Repository, transaction.Repository, error) {
	accounts, err := uow.AccountRepository()
	if err != nil {
		return nil, nil, err
	}
	entries, err := uow.TransactionRepository()
	if err != nil {
		return nil, nil, err
	}
	return accounts, entries, nil
}

// classify passes domain errors through and collapses everything else into
// domain.ErrStorage after logging the cause.
func (s *Service) classify(logger *slog.Logger, op string, err error) error {
	if domain.IsDomainError(err) {
		logger.Warn(op+" failed", "error", err)
		return err
	}
	logger.Error(op+" failed: storage error", "error", err)
	return domain.ErrStorage
}
