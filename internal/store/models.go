package store

// SessionRecord is the single durably persisted row: the auth token, the
// user id, and the display fields needed to rebuild an Identity without a
// network round-trip.
type SessionRecord struct {
	UserID  int64
	Token   string
	Name    string
	Role    string
	SavedAt int64
}
