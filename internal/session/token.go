package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type tokenClaims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// decodeClaims reads the access token without verifying it. The client
// holds no signing secret; the decode only serves expiry tracking and
// the role fallback, never authorization.
func decodeClaims(tokenStr string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (c *tokenClaims) expiresAt() (time.Time, error) {
	if c.ExpiresAt == nil {
		return time.Time{}, errors.New("token has no expiry")
	}
	return c.ExpiresAt.Time, nil
}
