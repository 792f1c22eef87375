package ports

import (
	"context"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. Role defaults to
// domain.RoleUser when empty.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// UpdateProfileInput carries the mutable profile fields. Empty strings leave
// the stored value unchanged. Role is honored only when CallerIsAdmin is set;
// otherwise it is silently ignored.
type UpdateProfileInput struct {
	Name          string
	Email         string
	Password      string
	Role          domain.Role
	CallerIsAdmin bool
}

// AuthResult pairs an identity with a freshly issued bearer token.
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*AuthResult, error)
}
