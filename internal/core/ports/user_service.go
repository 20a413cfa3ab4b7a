package ports

import (
	"context"
	"time"

	"github.com/traincore/coaching-api/internal/core/domain"
)

// CreateUserInput is the admin-only user creation payload. Unlike public
// registration it may assign any role.
type CreateUserInput struct {
	Username  string
	Email     string
	Password  string
	FullName  string
	Phone     string
	Role      string
	AvatarURL string
	StartDate time.Time
}

// UpdateProfileInput carries a self-service profile mutation. Role changes are
// not representable here. A password change requires the current password.
type UpdateProfileInput struct {
	Email           *string
	FullName        *string
	Phone           *string
	AvatarURL       *string
	NewPassword     *string
	CurrentPassword string
}

// AdminUpdateUserInput carries an admin mutation of any account, including role.
type AdminUpdateUserInput struct {
	Email     *string
	FullName  *string
	Phone     *string
	AvatarURL *string
	Role      *string
	Password  *string
}

// UserService defines account management use cases.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*domain.User, error)
	AdminUpdate(ctx context.Context, id string, in AdminUpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
