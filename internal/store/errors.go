package store

import "errors"

var (
	ErrNoSession = errors.New("no session stored")
)
