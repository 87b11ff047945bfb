package session

import (
	"time"

	"resto-client/internal/logger"

	"go.uber.org/zap"
)

type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
)

type User struct {
	ID       int64
	Username string
	FullName string
	Role     Role
}

// Session is the view model over the authenticated identity. Two
// states: Anonymous and Authenticated. Login only happens through
// LoginAs after the server accepted the credentials; Logout always
// succeeds locally.
type Session struct {
	state  State
	user   User
	claims *tokenClaims
}

func New() *Session {
	return &Session{state: StateAnonymous}
}

// LoginAs transitions to Authenticated. An access token, when present,
// is decoded for expiry tracking; a token that fails to decode is
// ignored rather than blocking the login the server already accepted.
func (s *Session) LoginAs(u User, token string) {
	s.state = StateAuthenticated
	s.user = u
	s.claims = nil

	if token != "" {
		claims, err := decodeClaims(token)
		if err != nil {
			logger.L().Warn("failed to decode access token claims", zap.Error(err))
		} else {
			s.claims = claims
		}
	}

	logger.L().Info("session authenticated",
		zap.Int64("user_id", u.ID),
		zap.String("role", string(u.Role)),
	)
}

// Logout drops to Anonymous unconditionally.
func (s *Session) Logout() {
	s.state = StateAnonymous
	s.user = User{}
	s.claims = nil
}

func (s *Session) State() State {
	return s.state
}

// User returns the authenticated user, or false while Anonymous.
func (s *Session) User() (User, bool) {
	if s.state != StateAuthenticated {
		return User{}, false
	}
	return s.user, true
}

// Can reports whether the current session may perform the action.
// Anonymous sessions can do nothing.
func (s *Session) Can(a Action) bool {
	if s.state != StateAuthenticated {
		return false
	}
	return s.user.Role.Allows(a)
}

// ExpiresAt reports the access-token expiry when one was decoded.
func (s *Session) ExpiresAt() (time.Time, bool) {
	if s.claims == nil {
		return time.Time{}, false
	}
	t, err := s.claims.expiresAt()
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
