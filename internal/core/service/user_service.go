package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/traincore/coaching-api/internal/core/domain"
	"github.com/traincore/coaching-api/internal/core/ports"
)

// UserService implements account management. All mutating entry points except
// UpdateProfile are reachable only through admin-gated routes.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// Create adds an account with an arbitrary role (admin flow).
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" || !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	startDate := in.StartDate
	if startDate.IsZero() {
		startDate = now
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Phone:        in.Phone,
		Role:         in.Role,
		AvatarURL:    in.AvatarURL,
		StartDate:    startDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user created by admin")
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateProfile applies a self-service mutation. The role is not touchable
// here, and changing the password requires proving the current one.
func (s *UserService) UpdateProfile(ctx context.Context, id string, in ports.UpdateProfileInput) (*domain.User, error) {
	update := ports.UserUpdate{
		Email:     in.Email,
		FullName:  in.FullName,
		Phone:     in.Phone,
		AvatarURL: in.AvatarURL,
	}

	if in.NewPassword != nil {
		current, err := s.users.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if bcrypt.CompareHashAndPassword([]byte(current.PasswordHash), []byte(in.CurrentPassword)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		update.PasswordHash = &hashed
	}

	return s.users.Update(ctx, id, update)
}

// AdminUpdate applies an admin mutation, which may change any field
// including the role.
func (s *UserService) AdminUpdate(ctx context.Context, id string, in ports.AdminUpdateUserInput) (*domain.User, error) {
	if in.Role != nil && !domain.ValidRole(*in.Role) {
		return nil, domain.ErrInvalidCredentials
	}

	update := ports.UserUpdate{
		Email:     in.Email,
		FullName:  in.FullName,
		Phone:     in.Phone,
		AvatarURL: in.AvatarURL,
		Role:      in.Role,
	}

	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		update.PasswordHash = &hashed
	}

	return s.users.Update(ctx, id, update)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
