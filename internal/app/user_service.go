package app

import (
	"context"
	"fmt"

	"github.com/luckyluck/event-booking-app/internal/clock"
	"github.com/luckyluck/event-booking-app/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	AppendCreatedEvent(ctx context.Context, userID, eventID string) error
}

// CredentialHasher converts a plaintext password into its stored,
// one-way hash.
type CredentialHasher interface {
	Hash(password string) (string, error)
}

type UserService struct {
	users  UserRepository
	hasher CredentialHasher
	clock  clock.Clock
}

func NewUserService(users UserRepository, hasher CredentialHasher, clk clock.Clock) *UserService {
	return &UserService{
		users:  users,
		hasher: hasher,
		clock:  clk,
	}
}

type RegisterUserInput struct {
	Email    string
	Password string
}

// Register creates a new user with a hashed credential. The email
// pre-check handles the serialized duplicate case; the unique
// constraint on users.email closes the concurrent one, and the
// repository reports either as domain.ErrDuplicateEmail.
func (s *UserService) Register(ctx context.Context, in RegisterUserInput) (domain.User, error) {
	if in.Email == "" {
		return domain.User{}, domain.ErrEmailRequired
	}
	if in.Password == "" {
		return domain.User{}, domain.ErrPasswordRequired
	}

	_, err := s.users.GetByEmail(ctx, in.Email)
	switch err {
	case domain.ErrUserNotFound:
		// Email is free.
	case nil:
		return domain.User{}, domain.ErrDuplicateEmail
	default:
		return domain.User{}, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", domain.ErrHashing, err)
	}

	now := s.clock.Now()
	user, err := s.users.Create(ctx, domain.User{
		Email:         in.Email,
		PasswordHash:  hash,
		CreatedEvents: []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		if err == domain.ErrDuplicateEmail {
			return domain.User{}, err
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}
