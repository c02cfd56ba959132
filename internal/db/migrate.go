package db

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"campus-portal-go/pkg/logger"
	"gorm.io/gorm"
)

const migrationsDirName = "migrations"

// migrationLockKey serializes portal instances migrating the same database.
const migrationLockKey = 7305110421

// Migrate applies the .sql files of dir that schema_migrations does not
// list yet, in filename order, each in its own transaction. An empty dir
// means the nearest migrations directory above the working directory.
func Migrate(db *gorm.DB, dir string, log logger.Logger) error {
	path := dir
	if path == "" {
		found, err := findMigrationsDir(migrationsDirName)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Warn("db: migrations directory not found, skipping")
				return nil
			}
			return err
		}
		path = found
	}

	if err := ensureSchemaMigrations(db); err != nil {
		return err
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	pending := pendingMigrations(entries, applied)
	if len(pending) == 0 {
		log.Debug("db: schema up to date", "dir", path)
		return nil
	}

	for _, name := range pending {
		contents, err := os.ReadFile(filepath.Join(path, name))
		if err != nil {
			return err
		}
		if err := applyMigration(db, name, strings.TrimSpace(string(contents))); err != nil {
			return err
		}
		log.Info("db: migration applied", "file", name)
	}
	return nil
}

// pendingMigrations lists the non-empty .sql files not yet applied, sorted.
func pendingMigrations(entries []fs.DirEntry, applied map[string]bool) []string {
	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") || applied[name] {
			continue
		}
		files = append(files, name)
	}
	sort.Strings(files)
	return files
}

func applyMigration(db *gorm.DB, name, sql string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", migrationLockKey).Error; err != nil {
			return fmt.Errorf("lock migrations: %w", err)
		}

		var count int64
		if err := tx.Raw("SELECT COUNT(1) FROM schema_migrations WHERE filename = ?", name).Scan(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		if sql != "" {
			if err := tx.Exec(sql).Error; err != nil {
				return fmt.Errorf("apply migration %s: %w", name, err)
			}
		}
		return tx.Exec("INSERT INTO schema_migrations (filename, applied_at) VALUES (?, ?)", name, time.Now().UTC()).Error
	})
}

func ensureSchemaMigrations(db *gorm.DB) error {
	return db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`).Error
}

func appliedMigrations(db *gorm.DB) (map[string]bool, error) {
	var names []string
	if err := db.Raw("SELECT filename FROM schema_migrations").Scan(&names).Error; err != nil {
		return nil, err
	}
	applied := make(map[string]bool, len(names))
	for _, name := range names {
		applied[name] = true
	}
	return applied, nil
}

func findMigrationsDir(dirName string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, dirName)
		info, err := os.Stat(candidate)
		if err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", os.ErrNotExist
}
