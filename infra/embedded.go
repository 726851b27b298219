package infra

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/amirasaad/ledger/infra/repository/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// snapshotTables lists the restored tables in dependency order.
var snapshotTables = []struct {
	name    string
	columns []string
}{
	{"accounts", []string{"id", "name", "phone", "credential", "balance", "account_number", "created_at"}},
	{"transactions", []string{"id", "origin_account_id", "destination_account_id", "amount", "kind", "created_at"}},
}

// openEmbedded opens an in-memory SQLite database on a single connection.
// Every statement runs on that connection, so units of work never overlap.
func openEmbedded(gormCfg *gorm.Config) (*gorm.DB, error) {
	connection, err := gorm.Open(sqlite.Open("file::memory:"), gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := connection.AutoMigrate(model.All()...); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate embedded schema: %w", err)
	}
	return connection, nil
}

// Snapshot writes the whole embedded database to a file and loads it back.
type Snapshot struct {
	db   *gorm.DB
	path string
	mu   sync.Mutex
}

// NewSnapshot binds a snapshot file to db. An empty path disables persistence.
func NewSnapshot(db *gorm.DB, path string) *Snapshot {
	return &Snapshot{db: db, path: path}
}

// Restore copies the rows of an existing snapshot into the empty database.
// A missing file is not an error.
func (s *Snapshot) Restore(ctx context.Context) error {
	if s.path == "" {
		return nil
	}
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	db := s.db.WithContext(ctx)
	if err := db.Exec("ATTACH DATABASE ? AS snap", s.path).Error; err != nil {
		return fmt.Errorf("attach snapshot: %w", err)
	}
	defer db.Exec("DETACH DATABASE snap")

	return db.Transaction(func(tx *gorm.DB) error {
		for _, t := range snapshotTables {
			cols := strings.Join(t.columns, ", ")
			stmt := fmt.Sprintf(
				"INSERT INTO main.%s (%s) SELECT %s FROM snap.%s",
				t.name, cols, cols, t.name,
			)
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("restore %s: %w", t.name, err)
			}
		}
		return nil
	})
}

// Flush implements repository.Flusher. The database is vacuumed into a
// temporary file that then replaces the snapshot, so a crash mid-write
// leaves the previous snapshot intact.
func (s *Snapshot) Flush(ctx context.Context) error {
	if s.path == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := s.path + ".tmp"
	if err := os.Remove(tmp); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := s.db.WithContext(ctx).Exec("VACUUM INTO ?", tmp).Error; err != nil {
		return fmt.Errorf("vacuum into %s: %w", tmp, err)
	}
	return os.Rename(tmp, s.path)
}
