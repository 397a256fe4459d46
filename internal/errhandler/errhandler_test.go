package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/renzovm/bancli/internal/gateway"
	"github.com/renzovm/bancli/internal/session"
	"github.com/renzovm/bancli/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	rec *store.SessionRecord
}

func (m *memoryRepo) SaveSession(rec store.SessionRecord) error { m.rec = &rec; return nil }
func (m *memoryRepo) LoadSession() (*store.SessionRecord, error) {
	if m.rec == nil {
		return nil, store.ErrNoSession
	}
	rec := *m.rec
	return &rec, nil
}
func (m *memoryRepo) ClearSession() error { m.rec = nil; return nil }
func (m *memoryRepo) Close() error        { return nil }

func TestIsInterrupt(t *testing.T) {
	assert.True(t, IsInterrupt(terminal.InterruptErr))
	assert.True(t, IsInterrupt(huh.ErrUserAborted))
	assert.True(t, IsInterrupt(fmt.Errorf("prompt: %w", terminal.InterruptErr)))

	assert.False(t, IsInterrupt(errors.New("connection refused")))
}

func authenticatedSession(t *testing.T, repo *memoryRepo) *session.Store {
	t.Helper()
	repo.rec = &store.SessionRecord{UserID: 1, Token: "tok", Name: "Ana", Role: "CLIENT"}
	sess := session.New(repo)
	require.NoError(t, sess.Restore())
	require.True(t, sess.IsAuthenticated())
	return sess
}

func TestForceLogoutIfStale_TearsDownOnUnauthorized(t *testing.T) {
	repo := &memoryRepo{}
	sess := authenticatedSession(t, repo)

	stale := fmt.Errorf("GET /users/1: %w", gateway.ErrUnauthorized)
	assert.True(t, ForceLogoutIfStale(stale, sess))

	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, repo.rec)
}

func TestForceLogoutIfStale_IgnoresOtherFailures(t *testing.T) {
	repo := &memoryRepo{}
	sess := authenticatedSession(t, repo)

	for _, err := range []error{gateway.ErrNetwork, gateway.ErrServer, gateway.ErrNotFound} {
		assert.False(t, ForceLogoutIfStale(err, sess))
	}
	assert.True(t, sess.IsAuthenticated())
}

func TestForceLogoutIfStale_NoSessionNothingToDo(t *testing.T) {
	sess := session.New(&memoryRepo{})
	require.NoError(t, sess.Restore())

	assert.False(t, ForceLogoutIfStale(gateway.ErrUnauthorized, sess))
	assert.False(t, ForceLogoutIfStale(gateway.ErrUnauthorized, nil))
}
