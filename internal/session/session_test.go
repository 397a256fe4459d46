package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/renzovm/bancli/internal/gateway"
	"github.com/renzovm/bancli/internal/model"
	"github.com/renzovm/bancli/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo keeps the session row in memory so the tests need no database.
type memoryRepo struct {
	rec *store.SessionRecord
}

func (m *memoryRepo) SaveSession(rec store.SessionRecord) error {
	m.rec = &rec
	return nil
}

func (m *memoryRepo) LoadSession() (*store.SessionRecord, error) {
	if m.rec == nil {
		return nil, store.ErrNoSession
	}
	rec := *m.rec
	return &rec, nil
}

func (m *memoryRepo) ClearSession() error {
	m.rec = nil
	return nil
}

func (m *memoryRepo) Close() error { return nil }

type fakeAuth struct {
	loginCalls int
	resp       *gateway.AuthResponse
	err        error
}

func (f *fakeAuth) Login(_ context.Context, _ gateway.LoginRequest) (*gateway.AuthResponse, error) {
	f.loginCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeAuth) Register(_ context.Context, _ gateway.RegisterRequest) (*gateway.AuthResponse, error) {
	return f.resp, f.err
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestNewStore_RestoringUntilRestoreReturns(t *testing.T) {
	s := New(&memoryRepo{})

	assert.True(t, s.IsRestoring())
	require.NoError(t, s.Restore())
	assert.False(t, s.IsRestoring())
	assert.Nil(t, s.Current())
	assert.False(t, s.IsAuthenticated())
}

func TestLogin_PublishesIdentityAndPersists(t *testing.T) {
	repo := &memoryRepo{}
	token := signedToken(t, jwt.MapClaims{"role": "ADMIN", "sub": "2"})
	auth := &fakeAuth{resp: &gateway.AuthResponse{Token: token, ID: 2, Name: "Root"}}

	s := New(repo)
	s.SetAuth(auth)
	require.NoError(t, s.Restore())

	require.NoError(t, s.Login(context.Background(), "root@bank.pe", "pw"))

	identity := s.Current()
	require.NotNil(t, identity)
	assert.Equal(t, int64(2), identity.ID)
	assert.Equal(t, "Root", identity.Name)
	assert.Equal(t, model.RoleAdmin, identity.Role)
	assert.Equal(t, token, s.Token())

	require.NotNil(t, repo.rec)
	assert.Equal(t, "ADMIN", repo.rec.Role)
	assert.Equal(t, token, repo.rec.Token)
}

func TestLogin_FailureLeavesStateUntouched(t *testing.T) {
	repo := &memoryRepo{}
	auth := &fakeAuth{err: &gateway.Error{Status: 401, Message: "invalid credentials"}}

	s := New(repo)
	s.SetAuth(auth)
	require.NoError(t, s.Restore())

	err := s.Login(context.Background(), "ana@bank.pe", "wrong")

	require.Error(t, err)
	assert.Nil(t, s.Current())
	assert.Nil(t, repo.rec)
	assert.Empty(t, s.Token())
}

func TestRestore_RebuildsIdentityWithoutNetwork(t *testing.T) {
	repo := &memoryRepo{rec: &store.SessionRecord{
		UserID: 7, Token: "stored-token", Name: "Ana", Role: "CLIENT", SavedAt: 1,
	}}
	auth := &fakeAuth{}

	s := New(repo)
	s.SetAuth(auth)
	require.NoError(t, s.Restore())

	identity := s.Current()
	require.NotNil(t, identity)
	assert.Equal(t, int64(7), identity.ID)
	assert.Equal(t, model.RoleClient, identity.Role)
	assert.Equal(t, "stored-token", s.Token())
	assert.Zero(t, auth.loginCalls, "restore must not hit the network")
}

func TestRestore_BlankTokenMeansLoggedOut(t *testing.T) {
	repo := &memoryRepo{rec: &store.SessionRecord{UserID: 7, Token: ""}}

	s := New(repo)
	require.NoError(t, s.Restore())

	assert.Nil(t, s.Current())
}

func TestLogout_ClearsDurableStateAndIdentity(t *testing.T) {
	repo := &memoryRepo{}
	token := signedToken(t, jwt.MapClaims{"role": "CLIENT"})
	auth := &fakeAuth{resp: &gateway.AuthResponse{Token: token, ID: 1, Name: "Ana"}}

	s := New(repo)
	s.SetAuth(auth)
	require.NoError(t, s.Restore())
	require.NoError(t, s.Login(context.Background(), "ana@bank.pe", "pw"))

	require.NoError(t, s.Logout())

	assert.Nil(t, s.Current())
	assert.Empty(t, s.Token())
	assert.Nil(t, repo.rec)

	// Logging out twice is harmless.
	assert.NoError(t, s.Logout())
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	repo := &memoryRepo{rec: &store.SessionRecord{UserID: 7, Token: "tok", Name: "Ana", Role: "CLIENT"}}

	s := New(repo)
	require.NoError(t, s.Restore())

	first := s.Current()
	first.Name = "mutated"

	assert.Equal(t, "Ana", s.Current().Name)
}

func TestRoleFromToken(t *testing.T) {
	adminToken := signedToken(t, jwt.MapClaims{"role": "ADMIN"})
	assert.Equal(t, model.RoleAdmin, roleFromToken(adminToken))

	clientToken := signedToken(t, jwt.MapClaims{"role": "CLIENT"})
	assert.Equal(t, model.RoleClient, roleFromToken(clientToken))

	// No claim, unknown claim, or garbage all fall back to CLIENT.
	assert.Equal(t, model.RoleClient, roleFromToken(signedToken(t, jwt.MapClaims{"sub": "1"})))
	assert.Equal(t, model.RoleClient, roleFromToken(signedToken(t, jwt.MapClaims{"role": "SUPERUSER"})))
	assert.Equal(t, model.RoleClient, roleFromToken("not-a-jwt"))
}

func TestLoginSurvivesRestart(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bancli.db")

	first, err := store.NewStore(dbPath, os.DirFS("../.."))
	require.NoError(t, err)

	token := signedToken(t, jwt.MapClaims{"role": "ADMIN"})
	auth := &fakeAuth{resp: &gateway.AuthResponse{Token: token, ID: 9, Name: "Root"}}

	sess := New(first)
	sess.SetAuth(auth)
	require.NoError(t, sess.Restore())
	require.NoError(t, sess.Login(context.Background(), "root@bank.pe", "pw"))
	require.NoError(t, first.Close())

	// A fresh process: new store, new session, no auth backend wired at
	// all. The identity must come back from disk alone.
	second, err := store.NewStore(dbPath, os.DirFS("../.."))
	require.NoError(t, err)
	defer second.Close()

	restored := New(second)
	require.NoError(t, restored.Restore())

	identity := restored.Current()
	require.NotNil(t, identity)
	assert.Equal(t, int64(9), identity.ID)
	assert.Equal(t, model.RoleAdmin, identity.Role)
	assert.Equal(t, "Root", identity.Name)
	assert.Equal(t, 1, auth.loginCalls)
}
