// Package testutil provides shared test fixtures.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/spendwise/internal/storage"
)

// SetupTestKV creates a migrated in-memory key-value store with automatic
// cleanup.
func SetupTestKV(t *testing.T) *storage.SQLiteKV {
	t.Helper()

	kv, err := storage.NewSQLiteKV(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := kv.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = kv.Close()
	})

	return kv
}
