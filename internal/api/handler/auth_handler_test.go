package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
	"github.com/gracepoint/church-admin-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(email, password string) (*ports.AuthResult, error)
	profileFn  func(userID string) (*domain.User, error)
	updateFn   func(userID string, in ports.UpdateProfileInput) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(_ context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(in)
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(email, password)
}

func (s *stubAuthService) Profile(_ context.Context, userID string) (*domain.User, error) {
	return s.profileFn(userID)
}

func (s *stubAuthService) UpdateProfile(_ context.Context, userID string, in ports.UpdateProfileInput) (*ports.AuthResult, error) {
	return s.updateFn(userID, in)
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeIdentity(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return body
}

func TestAuthHandler_Register_Created(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(in ports.RegisterInput) (*ports.AuthResult, error) {
			return &ports.AuthResult{
				Token: "tok",
				User: &domain.User{
					ID: "user_1", Name: in.Name, Email: in.Email, Role: domain.RoleUser,
				},
			}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"alice@x.org","password":"secret123"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	body := decodeIdentity(t, rec)
	if body["isAdmin"] != false {
		t.Fatalf("expected isAdmin=false for regular user, got %v", body["isAdmin"])
	}
	if body["token"] != "tok" {
		t.Fatalf("expected token in response, got %v", body["token"])
	}
	if _, ok := body["password"]; ok {
		t.Fatalf("password must never appear in responses")
	}
}

func TestAuthHandler_Register_ValidationRejects(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(ports.RegisterInput) (*ports.AuthResult, error) {
			t.Fatal("service must not be reached on invalid payload")
			return nil, nil
		},
	})

	cases := []string{
		`{"email":"alice@x.org","password":"secret123"}`,      // missing name
		`{"name":"A","email":"not-an-email","password":"secret123"}`,
		`{"name":"A","email":"a@x.org","password":"short"}`,   // under min length
		`{"name":"A","email":"a@x.org","password":"secret123","role":"root"}`,
	}
	for i, payload := range cases {
		c, _ := newAuthContext(t, http.MethodPost, "/auth/register", payload)
		err := h.Register(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("case %d: expected 400, got %v", i, err)
		}
	}
}

func TestAuthHandler_Login_OK(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(email, password string) (*ports.AuthResult, error) {
			return &ports.AuthResult{
				Token: "tok",
				User:  &domain.User{ID: "user_1", Email: email, Role: domain.RoleAdmin},
			}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"admin@x.org","password":"secret123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeIdentity(t, rec)
	if body["isAdmin"] != true {
		t.Fatalf("expected isAdmin=true for admin role, got %v", body["isAdmin"])
	}
}

func TestAuthHandler_Login_FailurePropagatesSentinel(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(string, string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"ghost@x.org","password":"whatever1"}`)
	err := h.Login(c)
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected sentinel to pass through untouched, got %v", err)
	}
}

func TestAuthHandler_Profile_NoToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		profileFn: func(userID string) (*domain.User, error) {
			return &domain.User{ID: userID, Name: "Alice", Role: domain.RoleUser}, nil
		},
	})

	c, rec := newAuthContext(t, http.MethodGet, "/auth/profile", "")
	c.Set("user_id", "user_1")
	c.Set("role", "user")

	if err := h.Profile(c); err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	body := decodeIdentity(t, rec)
	if _, ok := body["token"]; ok {
		t.Fatalf("profile reads must not mint tokens, got %v", body["token"])
	}
}

func TestAuthHandler_Profile_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		profileFn: func(string) (*domain.User, error) {
			t.Fatal("service must not be reached without claims")
			return nil, nil
		},
	})

	c, _ := newAuthContext(t, http.MethodGet, "/auth/profile", "")
	err := h.Profile(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestAuthHandler_UpdateProfile_AdminFlagFromRole(t *testing.T) {
	var captured ports.UpdateProfileInput
	h := NewAuthHandler(&stubAuthService{
		updateFn: func(userID string, in ports.UpdateProfileInput) (*ports.AuthResult, error) {
			captured = in
			return &ports.AuthResult{
				Token: "fresh",
				User:  &domain.User{ID: userID, Role: domain.RoleAdmin},
			}, nil
		},
	})

	c, _ := newAuthContext(t, http.MethodPut, "/auth/profile", `{"role":"finance"}`)
	c.Set("user_id", "user_1")
	c.Set("role", "admin")
	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !captured.CallerIsAdmin {
		t.Fatalf("admin caller not flagged as admin")
	}

	c, _ = newAuthContext(t, http.MethodPut, "/auth/profile", `{"role":"finance"}`)
	c.Set("user_id", "user_2")
	c.Set("role", "finance")
	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if captured.CallerIsAdmin {
		t.Fatalf("non-admin caller flagged as admin")
	}
}
