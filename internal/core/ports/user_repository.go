package ports

import (
	"context"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
)

// UserRepository defines persistence operations for identity records.
// Email lookups expect the address already lower-cased by the caller.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.User, error)
}
