package database

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

// TestDB is a migrated in-memory SQLite database for tests
type TestDB struct {
	Manager *Manager
	DB      *gorm.DB
	UoW     persistence.UnitOfWork
}

// NewTestDB opens a private in-memory SQLite database and migrates it.
// The connection is closed when the test ends.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	config := &Config{
		Driver:          DriverSQLite,
		Database:        fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_busy_timeout=5000", name, testDBSeq.Add(1)),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Hour,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
	}

	manager := NewManager(config, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())

	db, err := manager.Connect()
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDB{
		Manager: manager,
		DB:      db,
		UoW:     manager.CreateUnitOfWork(),
	}
}
