package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/researchsphere/hub-api/internal/core/domain"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// tokenClaims is the wire format of the bearer token payload.
type tokenClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 bearer tokens signed with a
// process-wide static secret. Tokens are stateless: there is no revocation
// list, and a token stays valid until natural expiry even if the user's role
// or password changes. Rotating the secret invalidates every outstanding
// token at once.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a manager signing with secret. A non-positive ttl
// falls back to 7 days.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token encoding the user's id, email and role, expiring at
// now + ttl.
func (m *TokenManager) Issue(userID, email, role string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks the signature and expiry and returns the decoded identity.
// Any failure (bad signature, wrong algorithm, malformed payload, expired
// token) is reported as domain.ErrInvalidToken. Expiry is strict: a token is
// rejected once the current time reaches ExpiresAt. Clock skew is not
// compensated.
func (m *TokenManager) Verify(token string) (*domain.Identity, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithIssuedAt())
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.UserID == "" || claims.Role == "" || claims.ExpiresAt == nil {
		return nil, domain.ErrInvalidToken
	}

	identity := &domain.Identity{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	return identity, nil
}
