package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadClear(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)

	token, err := store.Save("u-1", "demo_user_123", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	rec, ok := store.Load(token)
	require.True(t, ok)
	assert.Equal(t, "u-1", rec.UserID)
	assert.Equal(t, "demo_user_123", rec.Username)
	assert.Equal(t, "user", rec.Role)

	require.NoError(t, store.Clear(token))
	_, ok = store.Load(token)
	assert.False(t, ok)
}

func TestLoadUnknownToken(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)

	_, ok := store.Load("")
	assert.False(t, ok)
	_, ok = store.Load("no-such-token")
	assert.False(t, ok)
}

// a session written by one process must be readable after a restart
func TestSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")

	first, err := Open(path)
	require.NoError(t, err)
	token, err := first.Save("u-2", "admin", "admin")
	require.NoError(t, err)

	second, err := Open(path)
	require.NoError(t, err)
	rec, ok := second.Load(token)
	require.True(t, ok)
	assert.Equal(t, "admin", rec.Role)
}
