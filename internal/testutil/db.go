package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewGormDB opens a private in-memory SQLite database for one test.
// Callers run their own migrations. The database is closed on cleanup.
func NewGormDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := db.OpenGorm(sqlite.Open(dsn))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return gdb
}
