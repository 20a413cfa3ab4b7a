package ports

import (
	"context"

	"github.com/traincore/coaching-api/internal/core/domain"
)

// UserUpdate carries a partial user mutation. Nil fields keep stored values.
type UserUpdate struct {
	Email        *string
	FullName     *string
	Phone        *string
	AvatarURL    *string
	Role         *string
	PasswordHash *string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByUsernameOrEmail resolves a login identifier against both the
	// username and email columns in a single query.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
