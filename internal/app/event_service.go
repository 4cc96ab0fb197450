package app

import (
	"context"
	"fmt"

	"github.com/luckyluck/event-booking-app/internal/clock"
	"github.com/luckyluck/event-booking-app/internal/domain"
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
}

// UserLinker is the slice of the user store the event service needs:
// a creator lookup and the created-events append.
type UserLinker interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
	AppendCreatedEvent(ctx context.Context, userID, eventID string) error
}

type EventService struct {
	events EventRepository
	users  UserLinker
	clock  clock.Clock
}

func NewEventService(events EventRepository, users UserLinker, clk clock.Clock) *EventService {
	return &EventService{
		events: events,
		users:  users,
		clock:  clk,
	}
}

type CreateEventInput struct {
	Title       string
	Description string
	Price       float64
}

// Create validates the input, verifies the creator exists, persists the
// event, and links it into the creator's created-events list.
//
// The event insert and the linkage append are two independent writes.
// If the append fails after the insert committed, the error is returned
// to the caller and the event stays persisted; callers must treat the
// failure as authoritative even though a subsequent listing will show
// the event.
func (s *EventService) Create(ctx context.Context, creatorID string, in CreateEventInput) (domain.Event, error) {
	if creatorID == "" {
		return domain.Event{}, domain.ErrCreatorNotFound
	}
	if in.Title == "" {
		return domain.Event{}, domain.ErrTitleRequired
	}
	if in.Description == "" {
		return domain.Event{}, domain.ErrDescriptionRequired
	}
	if in.Price < 0 {
		return domain.Event{}, domain.ErrNegativePrice
	}

	if _, err := s.users.GetByID(ctx, creatorID); err != nil {
		if err == domain.ErrUserNotFound {
			return domain.Event{}, domain.ErrCreatorNotFound
		}
		return domain.Event{}, fmt.Errorf("verify creator: %w", err)
	}

	event, err := s.events.Create(ctx, domain.Event{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Creator:     creatorID,
		CreatedAt:   s.clock.Now(),
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("create event: %w", err)
	}

	if err := s.users.AppendCreatedEvent(ctx, creatorID, event.ID); err != nil {
		if err == domain.ErrUserNotFound {
			return domain.Event{}, domain.ErrCreatorNotFound
		}
		return domain.Event{}, fmt.Errorf("link event %s to creator: %w", event.ID, err)
	}

	return event, nil
}

// List returns every persisted event in creation order.
func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
