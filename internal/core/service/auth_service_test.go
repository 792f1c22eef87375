package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
	"github.com/gracepoint/church-admin-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func register(t *testing.T, svc *AuthService, name, email, password string, role domain.Role) *ports.AuthResult {
	t.Helper()
	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: name, Email: email, Password: password, Role: role,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return result
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	result := register(t, svc, "Alice", "Alice@X.org", "secret123", "")

	if result.User.PasswordHash == "secret123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if result.User.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, result.User.Role)
	}
	if result.User.Email != "alice@x.org" {
		t.Fatalf("expected normalized email, got %q", result.User.Email)
	}
	if result.Token == "" {
		t.Fatalf("expected token on registration")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	cases := []ports.RegisterInput{
		{Name: "", Email: "a@x.org", Password: "pass123"},
		{Name: "A", Email: "", Password: "pass123"},
		{Name: "A", Email: "a@x.org", Password: ""},
		{Name: "A", Email: "a@x.org", Password: "pass123", Role: "superuser"},
	}
	for i, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("case %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	register(t, svc, "Bob", "bob@x.org", "pass123", "")
	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Bobby", Email: "BOB@x.org", Password: "other456",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_RoundTrip(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)
	created := register(t, svc, "Carol", "carol@x.org", "s3cret99", domain.RoleFinance)

	result, err := svc.Login(context.Background(), "carol@x.org", "s3cret99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.User.ID != created.User.ID {
		t.Fatalf("expected id %q, got %q", created.User.ID, result.User.ID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != created.User.ID {
		t.Fatalf("expected sub %q, got %v", created.User.ID, claims["sub"])
	}
	if claims["role"] != string(domain.RoleFinance) {
		t.Fatalf("expected role %q, got %v", domain.RoleFinance, claims["role"])
	}
	if claims["email"] != "carol@x.org" {
		t.Fatalf("expected email claim, got %v", claims["email"])
	}
}

// Unknown email and wrong password must be indistinguishable: same sentinel
// error, hence same status and message downstream.
func TestAuthService_Login_FailuresIndistinguishable(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)
	register(t, svc, "Dave", "dave@x.org", "goodpass", "")

	_, errWrongPass := svc.Login(context.Background(), "dave@x.org", "badpass")
	_, errUnknown := svc.Login(context.Background(), "ghost@x.org", "whatever")

	if !errors.Is(errWrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if errWrongPass.Error() != errUnknown.Error() {
		t.Fatalf("failure messages differ: %q vs %q", errWrongPass, errUnknown)
	}
}

func TestAuthService_TokenExpiry(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Nanosecond)
	result := register(t, svc, "Eve", "eve@x.org", "pass1234", "")

	time.Sleep(10 * time.Millisecond)

	_, err := jwt.ParseWithClaims(result.Token, jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

// The expiry check is exclusive: a token is good up to the last instant
// before exp and rejected at exp itself.
func TestAuthService_TokenExpiryBoundary(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)
	result := register(t, svc, "Judy", "judy@x.org", "pass1234", "")

	keyFn := func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(result.Token, claims, keyFn); err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	expClaim, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("missing exp claim: %v", claims["exp"])
	}
	exp := time.Unix(int64(expClaim), 0)

	if _, err := jwt.ParseWithClaims(result.Token, jwt.MapClaims{}, keyFn,
		jwt.WithTimeFunc(func() time.Time { return exp.Add(-time.Second) })); err != nil {
		t.Fatalf("token rejected one second before expiry: %v", err)
	}

	_, err := jwt.ParseWithClaims(result.Token, jwt.MapClaims{}, keyFn,
		jwt.WithTimeFunc(func() time.Time { return exp }))
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at the expiry instant, got %v", err)
	}
}

func TestAuthService_TokenTamperSensitivity(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)
	result := register(t, svc, "Frank", "frank@x.org", "pass1234", "")

	parts := strings.Split(result.Token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}

	// Flip one character of the signature segment.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	parsed, err := jwt.ParseWithClaims(tampered, jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err == nil && parsed.Valid {
		t.Fatalf("tampered token accepted")
	}
}

func TestAuthService_UpdateProfile_RoleIgnoredForNonAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)
	created := register(t, svc, "Grace", "grace@x.org", "pass1234", "")

	result, err := svc.UpdateProfile(context.Background(), created.User.ID, ports.UpdateProfileInput{
		Name:          "Grace H.",
		Role:          domain.RoleAdmin,
		CallerIsAdmin: false,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if result.User.Role != domain.RoleUser {
		t.Fatalf("role escalation by non-admin: got %q", result.User.Role)
	}
	if result.User.Name != "Grace H." {
		t.Fatalf("name not updated: %q", result.User.Name)
	}
	if result.Token == "" {
		t.Fatalf("expected fresh token after profile update")
	}

	stored, _ := repo.FindByID(context.Background(), created.User.ID)
	if stored.Role != domain.RoleUser {
		t.Fatalf("stored role changed: %q", stored.Role)
	}
}

func TestAuthService_UpdateProfile_AdminCanChangeRole(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)
	created := register(t, svc, "Heidi", "heidi@x.org", "pass1234", "")

	result, err := svc.UpdateProfile(context.Background(), created.User.ID, ports.UpdateProfileInput{
		Role:          domain.RoleFinance,
		CallerIsAdmin: true,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if result.User.Role != domain.RoleFinance {
		t.Fatalf("expected role %q, got %q", domain.RoleFinance, result.User.Role)
	}

	// The reissued token carries the new role claim.
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != string(domain.RoleFinance) {
		t.Fatalf("token role claim not refreshed: %v", claims["role"])
	}
}

func TestAuthService_UpdateProfile_PasswordRehashed(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)
	created := register(t, svc, "Ivan", "ivan@x.org", "oldpass1", "")

	if _, err := svc.UpdateProfile(context.Background(), created.User.ID, ports.UpdateProfileInput{
		Password: "newpass2",
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), "ivan@x.org", "oldpass1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password still accepted: %v", err)
	}
	if _, err := svc.Login(context.Background(), "ivan@x.org", "newpass2"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}
