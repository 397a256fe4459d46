package store

type SessionRepository interface {
	SaveSession(rec SessionRecord) error
	LoadSession() (*SessionRecord, error)
	ClearSession() error

	Close() error
}
