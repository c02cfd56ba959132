package events

import (
	"context"

	"campus-portal-go/internal/domain/audience"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	CreateEvent(ctx context.Context, event *Event) error
	ListEvents(ctx context.Context, audiences []audience.Directive) ([]Event, error)
	DeleteEvent(ctx context.Context, id string) (bool, error)
	DeleteRSVPsByEvent(ctx context.Context, eventID string) (int64, error)
	DeleteNotificationsBySource(ctx context.Context, sourceID string) (int64, error)
}
