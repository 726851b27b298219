package initializer

import (
	"context"
	"fmt"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
)

// InitializeDependencies sets up logging and opens the configured store.
// The caller owns deps.Close.
func InitializeDependencies(ctx context.Context, cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	logger := setupLogger(cfg.Log)

	store, err := infra.OpenStore(ctx, cfg.DB, cfg.Env, logger)
	if err != nil {
		logger.Error("Failed to initialize database", "driver", cfg.DB.Driver, "error", err)
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return &app.Deps{
		Uow:    store.UnitOfWork(),
		Logger: logger,
		Close:  store.Close,
	}, nil
}
