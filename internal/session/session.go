// Package session holds the single source of truth for who is logged in.
// The identity is cached durably (sqlite, one row) so a restart restores it
// without a network round-trip; the token is trusted until a protected call
// rejects it.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/renzovm/bancli/internal/gateway"
	"github.com/renzovm/bancli/internal/model"
	"github.com/renzovm/bancli/internal/store"
)

// AuthAPI is the slice of the gateway the session store needs.
type AuthAPI interface {
	Login(ctx context.Context, req gateway.LoginRequest) (*gateway.AuthResponse, error)
	Register(ctx context.Context, req gateway.RegisterRequest) (*gateway.AuthResponse, error)
}

type Store struct {
	mu        sync.RWMutex
	repo      store.SessionRepository
	auth      AuthAPI
	identity  *model.Identity
	restoring bool
}

func New(repo store.SessionRepository) *Store {
	return &Store{repo: repo, restoring: true}
}

// SetAuth wires the authentication backend after construction. The gateway
// needs the store as its token source, so the two are connected in app
// wiring rather than in either constructor.
func (s *Store) SetAuth(auth AuthAPI) {
	s.auth = auth
}

// Restore rebuilds the identity from the persisted fields, synchronously and
// without validating the token against the server. The restoring flag stays
// up until this returns so the guard never redirects prematurely.
func (s *Store) Restore() error {
	s.mu.Lock()
	defer func() {
		s.restoring = false
		s.mu.Unlock()
	}()

	rec, err := s.repo.LoadSession()
	if err != nil {
		if errors.Is(err, store.ErrNoSession) {
			return nil
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}

	if rec.Token == "" {
		return nil
	}

	s.identity = &model.Identity{
		ID:    rec.UserID,
		Token: rec.Token,
		Name:  rec.Name,
		Role:  model.ParseRole(rec.Role),
	}

	return nil
}

// Login authenticates against the backend and persists the identity before
// publishing it. A failed login leaves the previous state untouched.
func (s *Store) Login(ctx context.Context, email, password string) error {
	resp, err := s.auth.Login(ctx, gateway.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	role := roleFromToken(resp.Token)

	rec := store.SessionRecord{
		UserID:  resp.ID,
		Token:   resp.Token,
		Name:    resp.Name,
		Role:    string(role),
		SavedAt: time.Now().Unix(),
	}
	if err := s.repo.SaveSession(rec); err != nil {
		return err
	}

	s.mu.Lock()
	s.identity = &model.Identity{
		ID:    resp.ID,
		Token: resp.Token,
		Name:  resp.Name,
		Role:  role,
	}
	s.mu.Unlock()

	return nil
}

// Register creates the user without authenticating; the caller is expected
// to log in afterwards.
func (s *Store) Register(ctx context.Context, req gateway.RegisterRequest) error {
	_, err := s.auth.Register(ctx, req)
	return err
}

// Logout clears the durable fields and the active identity synchronously.
// No network call is made.
func (s *Store) Logout() error {
	if err := s.repo.ClearSession(); err != nil {
		return err
	}

	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()

	return nil
}

func (s *Store) Current() *model.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

func (s *Store) IsRestoring() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.restoring
}

// Token implements gateway.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return ""
	}
	return s.identity.Token
}

// roleFromToken reads the role claim from the JWT without verifying the
// signature; verification is the server's job and the client only needs the
// claim for command gating. Anything unreadable falls back to CLIENT.
func roleFromToken(token string) model.Role {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return model.RoleClient
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return model.RoleClient
	}

	raw, _ := claims["role"].(string)
	return model.ParseRole(raw)
}
