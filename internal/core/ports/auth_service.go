package ports

import (
	"context"

	"github.com/traincore/coaching-api/internal/core/domain"
)

// Caller is the identity resolved by the auth middleware and threaded into
// every ownership-gated service call.
type Caller struct {
	ID   string
	Role string
}

// RegisterInput carries the self-service registration payload. The role is
// deliberately absent: public registration always creates a client account.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FullName  string
	Phone     string
	AvatarURL string
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService defines registration, login, and token-subject resolution.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	// Login accepts a username or an email as identifier. A missing account
	// and a wrong password are indistinguishable to the caller.
	Login(ctx context.Context, identifier, password string) (*AuthResult, error)
	// ValidateUser re-resolves a token subject. Returns ErrUserNotFound when
	// the account no longer exists, even if the token itself is still valid.
	ValidateUser(ctx context.Context, subjectID string) (*domain.User, error)
}
