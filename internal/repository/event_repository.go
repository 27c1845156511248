package repository

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/iliyamo/eventistan/internal/model"
)

// EventRepo serves the event catalog.  It is read-only: the slice it is
// built from is never mutated and every method returns copies.
type EventRepo struct {
	events []model.Event
}

func NewEventRepo(events []model.Event) *EventRepo {
	return &EventRepo{events: events}
}

// List returns every event in catalog order.
func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	return lo.Map(r.events, func(e model.Event, _ int) model.Event { return e.Clone() }), nil
}

// GetByID returns ErrEventNotFound when id is unknown.
func (r *EventRepo) GetByID(ctx context.Context, id string) (model.Event, error) {
	e, ok := lo.Find(r.events, func(e model.Event) bool { return e.ID == id })
	if !ok {
		return model.Event{}, fmt.Errorf("%w: %s", ErrEventNotFound, id)
	}
	return e.Clone(), nil
}

// ListByOrganizer returns the events organized by userID.
func (r *EventRepo) ListByOrganizer(ctx context.Context, userID string) ([]model.Event, error) {
	owned := lo.Filter(r.events, func(e model.Event, _ int) bool { return e.Organizer.ID == userID })
	return lo.Map(owned, func(e model.Event, _ int) model.Event { return e.Clone() }), nil
}

// GetOwned returns the event only when userID organizes it.
func (r *EventRepo) GetOwned(ctx context.Context, id, userID string) (model.Event, error) {
	e, err := r.GetByID(ctx, id)
	if err != nil {
		return model.Event{}, err
	}
	if e.Organizer.ID != userID {
		return model.Event{}, ErrForbidden
	}
	return e, nil
}
