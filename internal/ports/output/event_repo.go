package output

import (
	"context"

	"campusevents/internal/domain/entities"
)

type EventRepository interface {
	// Create assigns event.ID when it is empty.
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id string) (*entities.Event, error)
	// List returns events in creation order.
	List(ctx context.Context) ([]entities.Event, error)
	Update(ctx context.Context, event *entities.Event) error
}
