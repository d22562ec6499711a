package domain

import (
	"errors"
	"time"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the decoded bearer-token payload attached to a request after
// successful verification. It is request-scoped and never persisted; role or
// password changes after issuance do not affect an outstanding token.
type Identity struct {
	UserID    string
	Email     string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
