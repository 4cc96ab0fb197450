package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luckyluck/event-booking-app/internal/domain"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create persists the user and returns it with the store-generated id.
// A unique violation on email maps to domain.ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	const stmt = `
INSERT INTO users (email, password_hash, created_events, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := r.pool.QueryRow(ctx, stmt,
		user.Email, user.PasswordHash, user.CreatedEvents, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrDuplicateEmail
		}
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	const query = `
SELECT id, email, password_hash, created_events, created_at, updated_at
FROM users
WHERE id = $1`
	user, err := r.scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const query = `
SELECT id, email, password_hash, created_events, created_at, updated_at
FROM users
WHERE email = $1`
	user, err := r.scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// AppendCreatedEvent links an event to its creator in a single UPDATE,
// so concurrent appends for the same user cannot lose each other.
func (r *UserRepository) AppendCreatedEvent(ctx context.Context, userID, eventID string) error {
	const stmt = `
UPDATE users
SET created_events = array_append(created_events, $1), updated_at = NOW()
WHERE id = $2`
	tag, err := r.pool.Exec(ctx, stmt, eventID, userID)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("append created event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedEvents, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		if isInvalidUUID(err) {
			return domain.User{}, domain.ErrInvalidID
		}
		return domain.User{}, fmt.Errorf("scan user: %w", err)
	}
	return user, nil
}
