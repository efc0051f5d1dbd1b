package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupKV(t *testing.T) *SQLiteKV {
	t.Helper()

	kv, err := NewSQLiteKV(":memory:")
	require.NoError(t, err)

	require.NoError(t, kv.Migrate(context.Background()))

	t.Cleanup(func() {
		_ = kv.Close()
	})

	return kv
}

func TestPutGetRoundTrip(t *testing.T) {
	kv := setupKV(t)
	ctx := context.Background()

	payload := []byte(`[{"id":"exp-1","description":"Coffee"}]`)
	require.NoError(t, kv.Put(ctx, "expenses", payload))

	got, found, err := kv.Get(ctx, "expenses")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload, got)
}

func TestGetMissingKey(t *testing.T) {
	kv := setupKV(t)

	got, found, err := kv.Get(context.Background(), "categories")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestPutReplacesValue(t *testing.T) {
	kv := setupKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, "expenses", []byte(`[]`)))
	require.NoError(t, kv.Put(ctx, "expenses", []byte(`[{"id":"exp-2"}]`)))

	got, found, err := kv.Get(ctx, "expenses")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[{"id":"exp-2"}]`), got)
}

func TestDelete(t *testing.T) {
	kv := setupKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, "expenses", []byte(`[]`)))
	require.NoError(t, kv.Delete(ctx, "expenses"))

	_, found, err := kv.Get(ctx, "expenses")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting an absent key is a no-op.
	assert.NoError(t, kv.Delete(ctx, "expenses"))
}

func TestEmptyKeyRejected(t *testing.T) {
	kv := setupKV(t)
	ctx := context.Background()

	assert.ErrorIs(t, kv.Put(ctx, "  ", []byte(`[]`)), ErrEmptyString)

	_, _, err := kv.Get(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestMigrateIsIdempotent(t *testing.T) {
	kv := setupKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Migrate(ctx))
	require.NoError(t, kv.Migrate(ctx))

	version, err := kv.schemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}
