package model

// Role determines which command groups an identity may reach.
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleAdmin  Role = "ADMIN"
)

// ParseRole maps a raw role string onto the closed enum, defaulting to
// CLIENT for anything unrecognized.
func ParseRole(raw string) Role {
	if raw == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleClient
}

// Identity is the authenticated user's session record held client-side.
// The token is opaque and trusted until a protected call rejects it.
type Identity struct {
	ID    int64
	Token string
	Name  string
	Role  Role
}
