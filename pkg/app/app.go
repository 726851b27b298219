package app

import (
	"log/slog"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/pkg/service/ledger"
)

// Deps contains the infrastructure the services are built on.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
	// Close releases the storage backend. It performs the final flush on
	// the embedded backend.
	Close func() error
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AuthService    *auth.Service
	AccountService *account.Service
	LedgerService  *ledger.Service
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:           deps,
		Config:         cfg,
		AuthService:    auth.NewWithJWT(deps.Uow, cfg.Auth.Jwt, deps.Logger),
		AccountService: account.NewService(deps.Uow, deps.Logger),
		LedgerService:  ledger.NewService(deps.Uow, deps.Logger),
	}
}
