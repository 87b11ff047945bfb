package session

import "errors"

var (
	ErrUnknownRole      = errors.New("unknown role")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotPermitted     = errors.New("action not permitted for role")
)
