// database/bootstrap.go
package database

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"orchardlog/entities"
)

// Open opens (or creates) the SQLite file at path and brings the schema up to date.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// the PK rebuild must run before AutoMigrate, the upsert in the kv repository relies on it
	if err := migrateKVEntriesAddPK(db); err != nil {
		return nil, fmt.Errorf("migrate kv_entries: %w", err)
	}
	if err := db.AutoMigrate(&entities.KVEntry{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

// OpenSQLite is Open for process start-up: any failure is fatal.
func OpenSQLite(path string) *gorm.DB {
	db, err := Open(path)
	if err != nil {
		slog.Error("database unavailable", "path", path, "error", err)
		os.Exit(1)
	}
	return db
}

// migrateKVEntriesAddPK rebuilds kv_entries if an older build created it without a primary key on entry_key.
// Duplicate keys collapse to the most recently updated row.
func migrateKVEntriesAddPK(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='kv_entries'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		return nil
	}

	type colInfo struct {
		Cid  int
		Name string
		Type string
		Pk   int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(kv_entries)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}
	hasUpdatedAt := false
	for _, c := range cols {
		switch strings.ToLower(c.Name) {
		case "entry_key":
			if c.Pk == 1 {
				return nil
			}
		case "updated_at":
			hasUpdatedAt = true
		}
	}

	updated := "NULL"
	if hasUpdatedAt {
		updated = "updated_at"
	}
	return db.Transaction(func(tx *gorm.DB) error {
		stmts := []string{
			`CREATE TABLE kv_entries_new (entry_key TEXT PRIMARY KEY, value TEXT, updated_at DATETIME)`,
			fmt.Sprintf(`INSERT OR REPLACE INTO kv_entries_new (entry_key, value, updated_at)
SELECT entry_key, value, %s FROM kv_entries ORDER BY %s`, updated, orderOldest(hasUpdatedAt)),
			`DROP TABLE kv_entries`,
			`ALTER TABLE kv_entries_new RENAME TO kv_entries`,
		}
		for _, s := range stmts {
			if err := tx.Exec(s).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func orderOldest(hasUpdatedAt bool) string {
	if hasUpdatedAt {
		return "updated_at ASC, rowid ASC"
	}
	return "rowid ASC"
}
