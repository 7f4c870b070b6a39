package file

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestTokenStore_LoadMissing(t *testing.T) {
	store, err := NewTokenStore(t.TempDir())
	require.NoError(t, err)

	token, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, token)
}

func TestTokenStore_SaveAndLoad(t *testing.T) {
	store, err := NewTokenStore(t.TempDir())
	require.NoError(t, err)

	saved := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour).Round(time.Second),
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "access", loaded.AccessToken)
	assert.Equal(t, "refresh", loaded.RefreshToken)
	assert.True(t, saved.Expiry.Equal(loaded.Expiry))
}

func TestTokenStore_Clear(t *testing.T) {
	store, err := NewTokenStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(&oauth2.Token{AccessToken: "a"}))
	require.NoError(t, store.Clear())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, token)

	// Clearing again is not an error.
	assert.NoError(t, store.Clear())
}

func TestTokenStore_FilePermissions(t *testing.T) {
	store, err := NewTokenStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save(&oauth2.Token{AccessToken: "a"}))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
