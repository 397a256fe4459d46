package errhandler

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/renzovm/bancli/internal/gateway"
	"github.com/renzovm/bancli/internal/session"
)

// IsInterrupt reports whether the user cancelled an interactive prompt.
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// ForceLogoutIfStale tears the session down when an authenticated call came
// back unauthorized; the stored token is no longer any good. Reports whether
// the logout happened.
func ForceLogoutIfStale(err error, sess *session.Store) bool {
	if !errors.Is(err, gateway.ErrUnauthorized) {
		return false
	}
	if sess == nil || !sess.IsAuthenticated() {
		return false
	}
	return sess.Logout() == nil
}
