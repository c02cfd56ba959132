package announcements

import (
	"context"

	"campus-portal-go/internal/domain/audience"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	CreateAnnouncement(ctx context.Context, announcement *Announcement) error
	ListAnnouncements(ctx context.Context, audiences []audience.Directive) ([]Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) (bool, error)
	DeleteNotificationsBySource(ctx context.Context, sourceID string) (int64, error)
}
