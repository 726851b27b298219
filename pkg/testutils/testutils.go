// Package testutils starts storage backends for tests.
package testutils

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// EmbeddedConfig returns an embedded backend configuration whose snapshot
// lives in a per-test temporary directory.
func EmbeddedConfig(t *testing.T) *config.DB {
	t.Helper()
	return &config.DB{
		Driver: config.DriverEmbedded,
		Path:   filepath.Join(t.TempDir(), "ledger.db"),
	}
}

// OpenEmbeddedStore opens a fresh embedded store closed at test cleanup.
func OpenEmbeddedStore(t *testing.T) *infra.Store {
	t.Helper()
	store, err := infra.OpenStore(context.Background(), EmbeddedConfig(t), "test", DiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// OpenPostgresStore starts a Postgres container, migrates it and opens a
// store against it. The container is terminated at test cleanup.
func OpenPostgresStore(t *testing.T) *infra.Store {
	t.Helper()
	ctx := context.Background()

	pg, err := startPostgresContainer(ctx)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(pg) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := infra.OpenStore(ctx, &config.DB{
		Driver:          config.DriverPostgres,
		Url:             dsn,
		MaxOpenConns:    25,
		MaxIdleConns:    25,
		ConnMaxLifetime: time.Hour,
	}, "test", DiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
}
