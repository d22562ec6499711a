package ports

import (
	"context"

	"github.com/researchsphere/hub-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Email lookups expect an already-normalized (lowercase) address; uniqueness
// is enforced by the backing store's unique index.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile applies non-empty name/email fields. Returns
	// domain.ErrEmailTaken when the new email collides with another account.
	UpdateProfile(ctx context.Context, id string, name, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	// List returns a page of users ordered by creation time (newest first)
	// together with the total count.
	List(ctx context.Context, limit, offset int) ([]*domain.User, int64, error)
}
