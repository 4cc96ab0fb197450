package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/luckyluck/event-booking-app/internal/domain"
)

type fakeEventRepo struct {
	events     []domain.Event
	nextID     int
	createErr  error
	listErr    error
	createDone int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{}
}

func (r *fakeEventRepo) Create(_ context.Context, event domain.Event) (domain.Event, error) {
	if r.createErr != nil {
		return domain.Event{}, r.createErr
	}
	r.nextID++
	event.ID = fmt.Sprintf("event-%d", r.nextID)
	r.events = append(r.events, event)
	r.createDone++
	return event, nil
}

func (r *fakeEventRepo) List(_ context.Context) ([]domain.Event, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Event, len(r.events))
	copy(out, r.events)
	return out, nil
}

type fakeUserRepo struct {
	users     map[string]domain.User
	nextID    int
	createErr error
	appendErr error
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if r.createErr != nil {
		return domain.User{}, r.createErr
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domain.User{}, domain.ErrDuplicateEmail
		}
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r *fakeUserRepo) AppendCreatedEvent(_ context.Context, userID, eventID string) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	user, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.CreatedEvents = append(user.CreatedEvents, eventID)
	r.users[userID] = user
	return nil
}

type fakeHasher struct {
	err error
}

func (h fakeHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

var errStoreDown = errors.New("store unreachable")
