package testutil

import (
	"path/filepath"
	"testing"

	"github.com/volunteerhub-dev/volunteerhub/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewTestDB opens a migrated SQLite database in a temp dir with foreign keys
// enforced.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	gdb, err := db.Open(sqlite.Open("file:" + path + "?_foreign_keys=on"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := db.MigrateDatabase(gdb); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return gdb
}
