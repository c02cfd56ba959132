package announcements

import (
	"context"

	announcementsdomain "campus-portal-go/internal/domain/announcements"
	"campus-portal-go/internal/domain/principal"
	"campus-portal-go/pkg/logger"
)

type Service interface {
	List(ctx context.Context, p principal.Principal) ([]announcementsdomain.Announcement, error)
	Create(ctx context.Context, p principal.Principal, input announcementsdomain.CreateInput) (*announcementsdomain.CreateResult, error)
	Delete(ctx context.Context, p principal.Principal, id string) error
}

type Handlers struct {
	Announcements Service
	log           logger.Logger
}

func New(announcements Service, log logger.Logger) *Handlers {
	return &Handlers{
		Announcements: announcements,
		log:           log,
	}
}
