package input

import (
	"context"

	"campusevents/internal/application"
	"campusevents/internal/domain/entities"
	"campusevents/internal/domain/listing"
)

type CatalogUseCase interface {
	CreateEvent(ctx context.Context, form application.EventForm) (*entities.Event, error)
	SetEventStatus(ctx context.Context, eventID string, status string) (*entities.Event, error)
	GetEvent(ctx context.Context, eventID string) (*entities.EventDetails, error)
	BrowseEvents(ctx context.Context, q listing.Query) ([]entities.EventDetails, error)
}

var _ CatalogUseCase = (*application.CatalogService)(nil)
