package infra

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/config"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store is an open storage backend together with its unit of work.
type Store struct {
	DB       *gorm.DB
	Driver   string
	uow      *repository.UoW
	snapshot *Snapshot
	logger   *slog.Logger
}

// OpenStore opens the backend named by cnf.Driver and prepares its schema.
// The embedded backend restores its snapshot before the store is returned.
func OpenStore(
	ctx context.Context,
	cnf *config.DB,
	appEnv string,
	log *slog.Logger,
) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logMode),
		TranslateError: true,
	}

	s := &Store{Driver: cnf.Driver, logger: log.With("component", "store", "driver", cnf.Driver)}
	var err error
	switch cnf.Driver {
	case config.DriverEmbedded:
		s.DB, err = openEmbedded(gormCfg)
		if err != nil {
			return nil, err
		}
		s.snapshot = NewSnapshot(s.DB, cnf.Path)
		if err := s.snapshot.Restore(ctx); err != nil {
			_ = s.closeDB()
			return nil, fmt.Errorf("restore snapshot %s: %w", cnf.Path, err)
		}
		s.uow = repository.NewUoW(s.DB, repository.WithFlusher(s.snapshot), repository.WithLogger(s.logger))
	case config.DriverPostgres:
		s.DB, err = openPostgres(cnf, gormCfg)
		if err != nil {
			return nil, err
		}
		s.uow = repository.NewUoW(s.DB, repository.WithLogger(s.logger))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cnf.Driver)
	}

	s.logger.Info("Store opened", "path", cnf.Path)
	return s, nil
}

// UnitOfWork returns the store's unit of work.
func (s *Store) UnitOfWork() *repository.UoW {
	return s.uow
}

// Close flushes the embedded snapshot one last time and releases the connections.
func (s *Store) Close() error {
	if s.snapshot != nil {
		if err := s.snapshot.Flush(context.Background()); err != nil {
			s.logger.Error("Final flush failed", "error", err)
			_ = s.closeDB()
			return err
		}
	}
	return s.closeDB()
}

func (s *Store) closeDB() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
