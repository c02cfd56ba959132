package notifications

import (
	"context"

	notificationsdomain "campus-portal-go/internal/domain/notifications"
	"campus-portal-go/internal/domain/principal"
	"campus-portal-go/pkg/logger"
)

type Service interface {
	List(ctx context.Context, p principal.Principal, limit int) ([]notificationsdomain.Notification, int64, error)
	MarkRead(ctx context.Context, p principal.Principal, notificationID string) error
	MarkAllRead(ctx context.Context, p principal.Principal) (int64, error)
}

type Handlers struct {
	Notifications Service
	log           logger.Logger
}

func New(notifications Service, log logger.Logger) *Handlers {
	return &Handlers{
		Notifications: notifications,
		log:           log,
	}
}
