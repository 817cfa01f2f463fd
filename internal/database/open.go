package database

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/diegoclair/shift-reminder-bot/internal/domain"
	"github.com/diegoclair/shift-reminder-bot/migrator/sqlite"
	"go.uber.org/zap"
)

// Open opens the sqlite snapshot store and applies the migrations. An existing
// file that cannot be opened or migrated is moved aside as <path>.corrupt-<unix>
// and replaced by an empty store.
func Open(dbPath string, log *zap.SugaredLogger) (*DB, error) {
	db, err := openAndMigrate(dbPath)
	if err == nil {
		return db, nil
	}

	if _, statErr := os.Stat(dbPath); errors.Is(statErr, fs.ErrNotExist) {
		return nil, err
	}

	log.Errorw("Snapshot store is unreadable, starting with empty state",
		"path", dbPath,
		"error", fmt.Errorf("%w: %v", domain.ErrPersistenceCorrupt, err),
	)

	aside := fmt.Sprintf("%s.corrupt-%d", dbPath, time.Now().Unix())
	if err := os.Rename(dbPath, aside); err != nil {
		return nil, fmt.Errorf("failed to move corrupt database aside: %w", err)
	}
	log.Warnw("Corrupt database moved aside", "path", aside)

	return openAndMigrate(dbPath)
}

func openAndMigrate(dbPath string) (*DB, error) {
	db, err := New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}
