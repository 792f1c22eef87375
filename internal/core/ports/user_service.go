package ports

import (
	"context"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
)

// AdminUpdateUserInput carries the fields an admin may change on any account,
// including the role. Empty strings leave the stored value unchanged.
type AdminUpdateUserInput struct {
	Name  string
	Email string
	Role  domain.Role
}

// UserService covers admin-only account management.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, in AdminUpdateUserInput) (*domain.User, error)
	// Delete removes an account. Removing the calling admin's own account is
	// rejected with domain.ErrForbidden.
	Delete(ctx context.Context, callerID, id string) error
}
