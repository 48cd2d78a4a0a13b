package database

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpen_RebuildsTableWithoutPrimaryKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")

	old, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, old.Exec(`CREATE TABLE kv_entries (entry_key TEXT, value TEXT, updated_at DATETIME)`).Error)
	require.NoError(t, old.Exec(`INSERT INTO kv_entries VALUES ('a', 'first', '2024-01-01 00:00:00'), ('a', 'second', '2024-02-01 00:00:00'), ('b', 'only', '2024-01-01 00:00:00')`).Error)
	sqlDB, _ := old.DB()
	require.NoError(t, sqlDB.Close())

	db, err := Open(path)
	require.NoError(t, err)

	type row struct {
		EntryKey string
		Value    string
	}
	var rows []row
	require.NoError(t, db.Raw(`SELECT entry_key, value FROM kv_entries ORDER BY entry_key`).Scan(&rows).Error)
	assert.Equal(t, []row{{"a", "second"}, {"b", "only"}}, rows)

	var pk int
	require.NoError(t, db.Raw(`SELECT pk FROM pragma_table_info('kv_entries') WHERE name = 'entry_key'`).Scan(&pk).Error)
	assert.Equal(t, 1, pk)
}
