package credential

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	token, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestSaveThenLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "home"))

	require.NoError(t, store.Save("tok-abc"))

	token, ok, err := store.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-abc", token)
}

func TestSaveSetsOwnerOnlyPermissions(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Save("tok-abc"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Save("tok-abc"))

	require.NoError(t, store.Delete())
	require.NoError(t, store.Delete(), "deleting an absent credential should be a no-op")

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadCorruptFile(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, os.WriteFile(store.Path(), []byte("not json"), 0o600))

	_, _, err := store.Load()
	assert.Error(t, err)
}

func TestLoadEmptyToken(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"token":""}`), 0o600))

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok, "an empty token should read as absent")
}

func TestFingerprint(t *testing.T) {
	fp := Fingerprint("tok-abc")
	assert.Len(t, fp, 16)
	assert.Equal(t, fp, Fingerprint("tok-abc"), "fingerprint must be stable")
	assert.NotEqual(t, fp, Fingerprint("tok-xyz"))
	assert.NotContains(t, fp, "tok-abc")
}
