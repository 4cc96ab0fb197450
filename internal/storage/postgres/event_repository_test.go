package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/luckyluck/event-booking-app/internal/domain"
	"github.com/luckyluck/event-booking-app/internal/testutil"
)

func TestEventRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := NewEventRepository(pool)
	creatorID := testutil.InsertUser(t, ctx, pool, "creator@x.com", "$2a$12$fakehash")
	base := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("create returns generated id", func(t *testing.T) {
		event, err := repo.Create(ctx, domain.Event{
			Title:       "Talk",
			Description: "D",
			Price:       12.5,
			Creator:     creatorID,
			CreatedAt:   base,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if event.ID == "" {
			t.Fatalf("expected store-generated id")
		}
	})

	t.Run("list returns events in creation order", func(t *testing.T) {
		if _, err := repo.Create(ctx, domain.Event{
			Title: "Workshop", Description: "W", Price: 0, Creator: creatorID, CreatedAt: base.Add(time.Second),
		}); err != nil {
			t.Fatalf("create: %v", err)
		}

		events, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[0].Title != "Talk" || events[1].Title != "Workshop" {
			t.Fatalf("unexpected order: %s, %s", events[0].Title, events[1].Title)
		}
		if events[0].Price != 12.5 {
			t.Fatalf("expected price 12.5, got %v", events[0].Price)
		}
		if events[0].Creator != creatorID {
			t.Fatalf("expected creator %s, got %s", creatorID, events[0].Creator)
		}
	})

	t.Run("invalid creator id", func(t *testing.T) {
		_, err := repo.Create(ctx, domain.Event{
			Title: "Bad", Description: "B", Price: 1, Creator: "not-a-uuid", CreatedAt: base,
		})
		if err != domain.ErrInvalidID {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})
}
