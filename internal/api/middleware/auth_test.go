package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/traincore/coaching-api/internal/core/domain"
)

const testSecret = "test-secret"

type stubResolver struct {
	users map[string]*domain.User
}

func (r *stubResolver) ValidateUser(_ context.Context, subjectID string) (*domain.User, error) {
	u, ok := r.users[subjectID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func signToken(t *testing.T, secret, sub, role string, expiresIn time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(expiresIn).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, resolver SubjectResolver, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testSecret, resolver)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestAuth_ValidToken(t *testing.T) {
	resolver := &stubResolver{users: map[string]*domain.User{
		"u1": {ID: "u1", Username: "alice", Role: domain.RoleClient},
	}}
	token := signToken(t, testSecret, "u1", domain.RoleClient, time.Hour)

	c, err := runAuth(t, resolver, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if c.Get("user_id") != "u1" || c.Get("role") != domain.RoleClient {
		t.Fatalf("caller identity not injected: %v / %v", c.Get("user_id"), c.Get("role"))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	resolver := &stubResolver{users: map[string]*domain.User{}}

	_, err := runAuth(t, resolver, "")
	if httpStatus(t, err) != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	resolver := &stubResolver{users: map[string]*domain.User{}}

	for _, header := range []string{"Token abc", "Bearer", "justonechunk"} {
		_, err := runAuth(t, resolver, header)
		if httpStatus(t, err) != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %v", header, err)
		}
	}
}

func TestAuth_WrongSignature(t *testing.T) {
	resolver := &stubResolver{users: map[string]*domain.User{
		"u1": {ID: "u1", Role: domain.RoleClient},
	}}
	token := signToken(t, "other-secret", "u1", domain.RoleClient, time.Hour)

	_, err := runAuth(t, resolver, "Bearer "+token)
	if httpStatus(t, err) != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	resolver := &stubResolver{users: map[string]*domain.User{
		"u1": {ID: "u1", Role: domain.RoleClient},
	}}
	token := signToken(t, testSecret, "u1", domain.RoleClient, -time.Minute)

	_, err := runAuth(t, resolver, "Bearer "+token)
	if httpStatus(t, err) != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_DeletedSubject(t *testing.T) {
	// The token is still structurally valid, but the account is gone.
	resolver := &stubResolver{users: map[string]*domain.User{}}
	token := signToken(t, testSecret, "deleted-user", domain.RoleClient, time.Hour)

	_, err := runAuth(t, resolver, "Bearer "+token)
	if httpStatus(t, err) != http.StatusUnauthorized {
		t.Fatalf("expected 401 for deleted subject, got %v", err)
	}
}

func TestAuth_StoredRoleWins(t *testing.T) {
	// Claims carry the role at issuance; the store carries the truth.
	resolver := &stubResolver{users: map[string]*domain.User{
		"u1": {ID: "u1", Username: "alice", Role: domain.RoleClient},
	}}
	token := signToken(t, testSecret, "u1", domain.RoleAdmin, time.Hour)

	c, err := runAuth(t, resolver, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if c.Get("role") != domain.RoleClient {
		t.Fatalf("expected stored role to win, got %v", c.Get("role"))
	}
}
