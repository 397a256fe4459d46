// Package guard decides, per command invocation, whether a protected view
// group may run for the current session. Decisions are never cached; every
// invocation re-reads the session so an in-process logout takes effect
// immediately.
package guard

import (
	"errors"

	"github.com/renzovm/bancli/internal/model"
)

var (
	ErrLoginRequired = errors.New("you are not logged in, run 'bancli login' first")
	ErrRestoring     = errors.New("session is still restoring, try again")
)

// ViewGroup names a protected surface. An empty Roles set admits any
// authenticated identity; a non-empty set admits only those roles.
type ViewGroup struct {
	Name  string
	Roles []model.Role
}

var (
	ViewAccounts      = ViewGroup{Name: "accounts"}
	ViewTransactions  = ViewGroup{Name: "transactions"}
	ViewBeneficiaries = ViewGroup{Name: "beneficiaries"}
	ViewProfile       = ViewGroup{Name: "profile"}
	ViewAdmin         = ViewGroup{Name: "admin", Roles: []model.Role{model.RoleAdmin}}
)

type Decision int

const (
	// DecisionLoading: the session store is still restoring, no verdict yet.
	DecisionLoading Decision = iota
	// DecisionRedirectLogin: deny and send the user to the login entry
	// point. Role mismatches land here too, fail-closed: an insufficient
	// role is not told what it was missing.
	DecisionRedirectLogin
	DecisionRender
)

// SessionReader is the read-only slice of the session store the guard needs.
type SessionReader interface {
	IsRestoring() bool
	Current() *model.Identity
}

type Guard struct {
	session SessionReader
}

func New(session SessionReader) *Guard {
	return &Guard{session: session}
}

// Evaluate applies the fixed decision order: restoring, then presence, then
// role membership.
func (g *Guard) Evaluate(view ViewGroup) Decision {
	if g.session.IsRestoring() {
		return DecisionLoading
	}

	identity := g.session.Current()
	if identity == nil {
		return DecisionRedirectLogin
	}

	if len(view.Roles) == 0 {
		return DecisionRender
	}

	for _, role := range view.Roles {
		if identity.Role == role {
			return DecisionRender
		}
	}

	return DecisionRedirectLogin
}

// Require adapts Evaluate for command preambles: nil means run the view.
func (g *Guard) Require(view ViewGroup) error {
	switch g.Evaluate(view) {
	case DecisionRender:
		return nil
	case DecisionLoading:
		return ErrRestoring
	default:
		return ErrLoginRequired
	}
}
