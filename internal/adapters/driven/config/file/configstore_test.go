package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("terms.persist", true))
	require.NoError(t, store.Set("watch.debounce", int64(500)))
	require.NoError(t, store.Set("terms.data_dir", "/tmp/texpilot"))

	assert.True(t, store.GetBool("terms.persist"))
	assert.Equal(t, 500, store.GetInt("watch.debounce"))
	assert.Equal(t, "/tmp/texpilot", store.GetString("terms.data_dir"))
}

func TestConfigStore_MissingKeysReturnZeroValues(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.False(t, store.GetBool("nope"))
	assert.Zero(t, store.GetInt("nope"))
	assert.Empty(t, store.GetString("nope"))

	_, ok := store.Get("nope")
	assert.False(t, ok)
}

func TestConfigStore_WrongTypeReturnsZeroValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("key", "a string"))

	assert.Zero(t, store.GetInt("key"))
	assert.False(t, store.GetBool("key"))
}

func TestConfigStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("terms.persist", true))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.True(t, reopened.GetBool("terms.persist"))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[terms]\npersist = true\ndata_dir = \"/data\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.True(t, store.GetBool("terms.persist"))
	assert.Equal(t, "/data", store.GetString("terms.data_dir"))
}

func TestConfigStore_LoadInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not [valid"), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}
