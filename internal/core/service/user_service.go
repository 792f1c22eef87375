package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
	"github.com/gracepoint/church-admin-api/internal/core/ports"
)

// UserService implements admin-only account management. Route-level RBAC
// guarantees only admins reach these operations.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id string, in ports.AdminUpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = normalizeEmail(in.Email)
	}
	if in.Role != "" {
		if !domain.ValidRole(in.Role) {
			return nil, domain.ErrForbidden
		}
		if user.Role != in.Role {
			s.log.Info().Str("user_id", id).Str("from", string(user.Role)).Str("to", string(in.Role)).Msg("role changed")
		}
		user.Role = in.Role
	}
	user.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, user)
}

// Delete removes an account. Admins cannot delete themselves; that would
// strand the system without a way to undo the mistake from the same session.
func (s *UserService) Delete(ctx context.Context, callerID, id string) error {
	if callerID == id {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
