package announcements

import (
	"context"
	"strings"

	"campus-portal-go/internal/domain/audience"
	"campus-portal-go/internal/domain/notifications"
	"campus-portal-go/internal/domain/principal"
	"campus-portal-go/internal/domain/visibility"
	"github.com/google/uuid"
)

type Service struct {
	repo     Repository
	notifier notifications.Broadcaster
}

func NewService(repo Repository, notifier notifications.Broadcaster) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// List returns the announcements p may read, newest first.
func (s *Service) List(ctx context.Context, p principal.Principal) ([]Announcement, error) {
	audiences := visibility.Audiences(p.Role)
	if len(audiences) == 0 {
		return []Announcement{}, nil
	}

	items, err := s.repo.ListAnnouncements(ctx, audiences)
	if err != nil {
		return nil, err
	}
	return visibility.Broadcastables(p, items, func(a Announcement) audience.Directive { return a.Audience }), nil
}

// Create stores the announcement and then notifies its audience. A failed
// fan-out is reported through CreateResult.Warning.
func (s *Service) Create(ctx context.Context, p principal.Principal, input CreateInput) (*CreateResult, error) {
	if err := principal.RequireAdmin(p); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	directive, err := audience.Parse(input.Audience)
	if err != nil {
		return nil, err
	}

	announcement := Announcement{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      strings.TrimSpace(input.Body),
		Audience:  directive,
		Urgent:    input.Urgent,
		CreatedBy: p.ID,
	}
	if err := s.repo.CreateAnnouncement(ctx, &announcement); err != nil {
		return nil, err
	}

	severity := notifications.SeverityNormal
	if announcement.Urgent {
		severity = notifications.SeverityUrgent
	}

	result := &CreateResult{Announcement: announcement}
	result.NotifiedCount, result.Warning = s.notifier.Fanout(ctx, notifications.Broadcast{
		SourceType: notifications.SourceAnnouncement,
		SourceID:   announcement.ID,
		Title:      announcement.Title,
		Audience:   announcement.Audience,
		Severity:   severity,
		CreatedBy:  p.ID,
	})
	return result, nil
}

// Delete removes the announcement and the notifications it produced.
func (s *Service) Delete(ctx context.Context, p principal.Principal, id string) error {
	if err := principal.RequireAdmin(p); err != nil {
		return err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return ErrAnnouncementNotFound
	}

	return s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.DeleteNotificationsBySource(ctx, id); err != nil {
			return err
		}
		deleted, err := tx.DeleteAnnouncement(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrAnnouncementNotFound
		}
		return nil
	})
}
