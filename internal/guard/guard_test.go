package guard

import (
	"testing"

	"github.com/renzovm/bancli/internal/model"
	"github.com/stretchr/testify/assert"
)

type fakeSession struct {
	restoring bool
	identity  *model.Identity
}

func (f *fakeSession) IsRestoring() bool        { return f.restoring }
func (f *fakeSession) Current() *model.Identity { return f.identity }

func client() *model.Identity {
	return &model.Identity{ID: 1, Token: "t", Name: "Ana", Role: model.RoleClient}
}

func admin() *model.Identity {
	return &model.Identity{ID: 2, Token: "t", Name: "Root", Role: model.RoleAdmin}
}

func TestEvaluate_RestoringWinsOverEverything(t *testing.T) {
	g := New(&fakeSession{restoring: true, identity: admin()})

	assert.Equal(t, DecisionLoading, g.Evaluate(ViewAccounts))
	assert.Equal(t, DecisionLoading, g.Evaluate(ViewAdmin))
}

func TestEvaluate_NoIdentityRedirectsToLogin(t *testing.T) {
	g := New(&fakeSession{})

	assert.Equal(t, DecisionRedirectLogin, g.Evaluate(ViewAccounts))
	assert.Equal(t, DecisionRedirectLogin, g.Evaluate(ViewAdmin))
}

func TestEvaluate_AuthenticatedClient(t *testing.T) {
	g := New(&fakeSession{identity: client()})

	for _, view := range []ViewGroup{ViewAccounts, ViewTransactions, ViewBeneficiaries, ViewProfile} {
		assert.Equal(t, DecisionRender, g.Evaluate(view), view.Name)
	}

	// Insufficient role is denied the same way as no session at all.
	assert.Equal(t, DecisionRedirectLogin, g.Evaluate(ViewAdmin))
}

func TestEvaluate_AdminReachesAdminViews(t *testing.T) {
	g := New(&fakeSession{identity: admin()})

	assert.Equal(t, DecisionRender, g.Evaluate(ViewAdmin))
	assert.Equal(t, DecisionRender, g.Evaluate(ViewAccounts))
}

func TestEvaluate_ReflectsLogoutImmediately(t *testing.T) {
	session := &fakeSession{identity: client()}
	g := New(session)

	assert.Equal(t, DecisionRender, g.Evaluate(ViewAccounts))

	session.identity = nil
	assert.Equal(t, DecisionRedirectLogin, g.Evaluate(ViewAccounts))
}

func TestRequire(t *testing.T) {
	assert.ErrorIs(t, New(&fakeSession{restoring: true}).Require(ViewAccounts), ErrRestoring)
	assert.ErrorIs(t, New(&fakeSession{}).Require(ViewAccounts), ErrLoginRequired)
	assert.ErrorIs(t, New(&fakeSession{identity: client()}).Require(ViewAdmin), ErrLoginRequired)
	assert.NoError(t, New(&fakeSession{identity: client()}).Require(ViewProfile))
}
