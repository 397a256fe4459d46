package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "bancli.db")
	s, err := NewStore(dbPath, os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadSession_EmptyDatabase(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.LoadSession()
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Nil(t, rec)
}

func TestSaveLoadClearSession(t *testing.T) {
	s := newTestStore(t)

	saved := SessionRecord{
		UserID:  42,
		Token:   "jwt-token",
		Name:    "Ana",
		Role:    "ADMIN",
		SavedAt: 1756600000,
	}
	require.NoError(t, s.SaveSession(saved))

	loaded, err := s.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, saved, *loaded)

	require.NoError(t, s.ClearSession())
	_, err = s.LoadSession()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSaveSession_NewLoginOverwrites(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveSession(SessionRecord{UserID: 1, Token: "old", Name: "Ana", Role: "CLIENT", SavedAt: 1}))
	require.NoError(t, s.SaveSession(SessionRecord{UserID: 2, Token: "new", Name: "Luis", Role: "CLIENT", SavedAt: 2}))

	loaded, err := s.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, int64(2), loaded.UserID)
	assert.Equal(t, "new", loaded.Token)
	assert.Equal(t, "Luis", loaded.Name)
}

func TestClearSession_EmptyDatabaseIsNoError(t *testing.T) {
	s := newTestStore(t)

	assert.NoError(t, s.ClearSession())
}
