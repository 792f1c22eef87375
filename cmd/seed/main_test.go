package main

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
	"github.com/gracepoint/church-admin-api/internal/core/service"
)

type memUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := *user
	copy.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		out := *u
		return &out, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	copy := *user
	r.users[user.ID] = &copy
	out := copy
	return &out, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		copy := *u
		out = append(out, &copy)
	}
	return out, nil
}

// A seeded admin must be able to log in regardless of how the email was cased
// in the environment: the stored address has to match what the login path
// looks up after its own normalization.
func TestSeedAdmin_NormalizedEmailCanLogIn(t *testing.T) {
	repo := newMemUserRepo()

	admin, err := seedAdmin(context.Background(), repo, seedConfig{
		AdminName:     "Pastor",
		AdminEmail:    "  Pastor@Church.org ",
		AdminPassword: "shepherd1",
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if admin.Email != "pastor@church.org" {
		t.Fatalf("expected normalized email, got %q", admin.Email)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %q", admin.Role)
	}

	svc := service.NewAuthService(repo, "secret", time.Hour)
	for _, email := range []string{"pastor@church.org", "Pastor@Church.org", "PASTOR@CHURCH.ORG"} {
		result, err := svc.Login(context.Background(), email, "shepherd1")
		if err != nil {
			t.Fatalf("login as %q failed: %v", email, err)
		}
		if result.User.ID != admin.ID {
			t.Fatalf("login as %q resolved wrong account: %q", email, result.User.ID)
		}
	}
}

func TestSeedAdmin_ExistingAccount(t *testing.T) {
	repo := newMemUserRepo()
	cfg := seedConfig{AdminEmail: "admin@church.org", AdminPassword: "shepherd1"}

	if _, err := seedAdmin(context.Background(), repo, cfg); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}

	// Re-running with different casing still collides with the stored account.
	cfg.AdminEmail = "Admin@Church.org"
	_, err := seedAdmin(context.Background(), repo, cfg)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists on re-seed, got %v", err)
	}
}
