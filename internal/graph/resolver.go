package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/luckyluck/event-booking-app/internal/app"
	"github.com/luckyluck/event-booking-app/internal/domain"
	"github.com/luckyluck/event-booking-app/internal/middleware"
)

// Resolver is the root resolver: one method per exposed operation.
type Resolver struct {
	events *app.EventService
	users  *app.UserService
}

func NewResolver(events *app.EventService, users *app.UserService) *Resolver {
	return &Resolver{events: events, users: users}
}

// NewSchema parses the schema against the root resolver.
func NewSchema(events *app.EventService, users *app.UserService) *graphql.Schema {
	return graphql.MustParseSchema(Schema, NewResolver(events, users))
}

func (r *Resolver) Events(ctx context.Context) ([]*eventResolver, error) {
	events, err := r.events.List(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	resolvers := make([]*eventResolver, 0, len(events))
	for _, event := range events {
		resolvers = append(resolvers, &eventResolver{event: event})
	}
	return resolvers, nil
}

type eventInput struct {
	Title       string
	Description string
	Price       Price
}

func (r *Resolver) CreateEvent(ctx context.Context, args struct{ EventInput eventInput }) (*eventResolver, error) {
	creatorID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errUnauthenticated
	}

	event, err := r.events.Create(ctx, creatorID, app.CreateEventInput{
		Title:       args.EventInput.Title,
		Description: args.EventInput.Description,
		Price:       float64(args.EventInput.Price),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return &eventResolver{event: event}, nil
}

type userInput struct {
	Email    string
	Password string
}

func (r *Resolver) CreateUser(ctx context.Context, args struct{ UserInput userInput }) (*userResolver, error) {
	user, err := r.users.Register(ctx, app.RegisterUserInput{
		Email:    args.UserInput.Email,
		Password: args.UserInput.Password,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return &userResolver{user: user}, nil
}

type eventResolver struct {
	event domain.Event
}

func (r *eventResolver) ID() graphql.ID {
	return graphql.ID(r.event.ID)
}

func (r *eventResolver) Title() string {
	return r.event.Title
}

func (r *eventResolver) Description() string {
	return r.event.Description
}

func (r *eventResolver) Price() Price {
	return Price(r.event.Price)
}

func (r *eventResolver) Creator() graphql.ID {
	return graphql.ID(r.event.Creator)
}

func (r *eventResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.event.CreatedAt}
}

type userResolver struct {
	user domain.User
}

func (r *userResolver) ID() graphql.ID {
	return graphql.ID(r.user.ID)
}

func (r *userResolver) Email() string {
	return r.user.Email
}

// Password is always redacted: the hash never leaves the server.
func (r *userResolver) Password() *string {
	return nil
}

func (r *userResolver) CreatedEvents() []graphql.ID {
	ids := make([]graphql.ID, 0, len(r.user.CreatedEvents))
	for _, id := range r.user.CreatedEvents {
		ids = append(ids, graphql.ID(id))
	}
	return ids
}

func (r *userResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.user.CreatedAt}
}
