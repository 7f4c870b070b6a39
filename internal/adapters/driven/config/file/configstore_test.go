package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("anthropic.api_key", "sk-ant-test")
	require.NoError(t, err)

	val, ok := store.Get("anthropic.api_key")
	assert.True(t, ok)
	assert.Equal(t, "sk-ant-test", val)
}

func TestConfigStore_GetString(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("string_key", "hello world")
	require.NoError(t, err)

	assert.Equal(t, "hello world", store.GetString("string_key"))

	// Non-existent key
	assert.Equal(t, "", store.GetString("nonexistent"))

	// Wrong type
	err = store.Set("int_key", 42)
	require.NoError(t, err)
	assert.Equal(t, "", store.GetString("int_key"))
}

func TestConfigStore_GetInt(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("int_key", 42)
	require.NoError(t, err)

	assert.Equal(t, 42, store.GetInt("int_key"))
	assert.Equal(t, 0, store.GetInt("nonexistent"))

	// Wrong type
	err = store.Set("string_key", "not an int")
	require.NoError(t, err)
	assert.Equal(t, 0, store.GetInt("string_key"))
}

func TestConfigStore_GetBool(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("bool_key", true))
	assert.True(t, store.GetBool("bool_key"))

	require.NoError(t, store.Set("bool_key_false", false))
	assert.False(t, store.GetBool("bool_key_false"))

	assert.False(t, store.GetBool("nonexistent"))

	// Wrong type
	require.NoError(t, store.Set("string_key", "true"))
	assert.False(t, store.GetBool("string_key"))
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("anthropic.api_key", "sk-ant-persisted"))
	require.NoError(t, store1.Set("anthropic.max_tokens", 2048))

	// A fresh store over the same directory sees the persisted values.
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "sk-ant-persisted", store2.GetString("anthropic.api_key"))
	assert.Equal(t, 2048, store2.GetInt("anthropic.max_tokens"))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := "[anthropic]\napi_key = \"sk-ant-nested\"\nmax_tokens = 512\n\n[calendar]\ntimezone = \"Europe/London\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(cfg), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "sk-ant-nested", store.GetString("anthropic.api_key"))
	assert.Equal(t, 512, store.GetInt("anthropic.max_tokens"))
	assert.Equal(t, "Europe/London", store.GetString("calendar.timezone"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("key", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
