package storage

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeConformance exercises the Store contract against any backend.
func storeConformance(t *testing.T, store Store) {
	t.Helper()

	// Missing key
	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	// Write and read back
	require.NoError(t, store.Put("scores", []byte("v1")))
	data, ok, err := store.Get("scores")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), data)

	// Overwrite
	require.NoError(t, store.Put("scores", []byte("v2")))
	data, _, _ = store.Get("scores")
	assert.Equal(t, []byte("v2"), data)

	// Keys
	require.NoError(t, store.Put("settings", []byte("{}")))
	keys, err := store.Keys()
	require.NoError(t, err)
	sort.Strings(keys)
	assert.Equal(t, []string{"scores", "settings"}, keys)

	// Delete, including a missing key
	require.NoError(t, store.Delete("scores"))
	require.NoError(t, store.Delete("scores"))
	_, ok, err = store.Get("scores")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStore(t *testing.T) {
	storeConformance(t, NewMemStore())
}

func TestMemStoreCopiesValues(t *testing.T) {
	store := NewMemStore()
	value := []byte("original")
	require.NoError(t, store.Put("k", value))

	value[0] = 'X'
	got, _, _ := store.Get("k")
	assert.Equal(t, []byte("original"), got)

	got[0] = 'Y'
	again, _, _ := store.Get("k")
	assert.Equal(t, []byte("original"), again)
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	storeConformance(t, store)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put("scores", []byte("persisted")))

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	data, ok, err := reopened.Get("scores")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("persisted"), data)
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		require.NoError(t, store.Put("scores", []byte("value")))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "scores.dat", entries[0].Name())
}
