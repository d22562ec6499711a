package ports

import (
	"context"

	"github.com/researchsphere/hub-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account. Password
// confirmation is a transport concern and is checked before the service call.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// UpdateProfileInput carries optional profile changes; empty fields are left
// untouched.
type UpdateProfileInput struct {
	Name  string
	Email string
}

// UserPage is one page of accounts, for the admin listing.
type UserPage struct {
	Data   []*domain.User
	Total  int64
	Limit  int
	Offset int
	Pages  int
}

// AuthService defines the account use cases: registration, login and profile
// management. Register and Login also return a freshly issued bearer token.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	ListUsers(ctx context.Context, limit, offset int) (*UserPage, error)
}
