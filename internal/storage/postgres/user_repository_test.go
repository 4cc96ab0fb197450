package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/luckyluck/event-booking-app/internal/domain"
	"github.com/luckyluck/event-booking-app/internal/testutil"
)

func TestUserRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := NewUserRepository(pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("create and fetch by id and email", func(t *testing.T) {
		created, err := repo.Create(ctx, domain.User{
			Email:         "a@x.com",
			PasswordHash:  "$2a$12$fakehash",
			CreatedEvents: []string{},
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected store-generated id")
		}

		byID, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get by id: %v", err)
		}
		if byID.Email != "a@x.com" || byID.PasswordHash != "$2a$12$fakehash" {
			t.Fatalf("unexpected user: %+v", byID)
		}
		if len(byID.CreatedEvents) != 0 {
			t.Fatalf("expected empty created events, got %v", byID.CreatedEvents)
		}

		byEmail, err := repo.GetByEmail(ctx, "a@x.com")
		if err != nil {
			t.Fatalf("get by email: %v", err)
		}
		if byEmail.ID != created.ID {
			t.Fatalf("expected id %s, got %s", created.ID, byEmail.ID)
		}
	})

	t.Run("duplicate email hits the unique constraint", func(t *testing.T) {
		_, err := repo.Create(ctx, domain.User{
			Email:        "a@x.com",
			PasswordHash: "$2a$12$otherhash",
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if !errors.Is(err, domain.ErrDuplicateEmail) {
			t.Fatalf("expected ErrDuplicateEmail, got %v", err)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "nobody@x.com")
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("append created event", func(t *testing.T) {
		userID := testutil.InsertUser(t, ctx, pool, "b@x.com", "$2a$12$fakehash")
		events := NewEventRepository(pool)

		first, err := events.Create(ctx, domain.Event{
			Title: "Talk", Description: "D", Price: 12.5, Creator: userID, CreatedAt: now,
		})
		if err != nil {
			t.Fatalf("create event: %v", err)
		}
		second, err := events.Create(ctx, domain.Event{
			Title: "Workshop", Description: "W", Price: 30, Creator: userID, CreatedAt: now.Add(time.Second),
		})
		if err != nil {
			t.Fatalf("create event: %v", err)
		}

		if err := repo.AppendCreatedEvent(ctx, userID, first.ID); err != nil {
			t.Fatalf("append: %v", err)
		}
		if err := repo.AppendCreatedEvent(ctx, userID, second.ID); err != nil {
			t.Fatalf("append: %v", err)
		}

		user, err := repo.GetByID(ctx, userID)
		if err != nil {
			t.Fatalf("get by id: %v", err)
		}
		if len(user.CreatedEvents) != 2 || user.CreatedEvents[0] != first.ID || user.CreatedEvents[1] != second.ID {
			t.Fatalf("expected ordered created events [%s %s], got %v", first.ID, second.ID, user.CreatedEvents)
		}
	})

	t.Run("append for unknown user", func(t *testing.T) {
		err := repo.AppendCreatedEvent(ctx, "00000000-0000-0000-0000-000000000000", "00000000-0000-0000-0000-000000000001")
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
