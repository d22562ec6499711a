package ports

import (
	"context"

	"github.com/researchsphere/hub-api/internal/core/domain"
)

// PasswordHasher produces and checks adaptive one-way password hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash. A malformed
	// hash verifies false instead of surfacing an error into the request path.
	Verify(plaintext, hash string) bool
}

// TokenIssuer mints signed, time-bound bearer tokens.
type TokenIssuer interface {
	Issue(userID, email, role string) (string, error)
}

// TokenVerifier checks a bearer token's signature and expiry and decodes the
// identity it carries. Any failure is reported as domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}

// ViewCounter tracks per-paper view counts.
type ViewCounter interface {
	Increment(ctx context.Context, paperID string) (int64, error)
	Get(ctx context.Context, paperID string) (int64, error)
}
