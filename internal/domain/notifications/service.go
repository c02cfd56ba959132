package notifications

import (
	"context"
	"strings"

	"campus-portal-go/internal/domain/principal"
	"campus-portal-go/internal/domain/visibility"
)

const defaultListLimit = 100

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the caller's notifications newest first and the unread count.
func (s *Service) List(ctx context.Context, p principal.Principal, limit int) ([]Notification, int64, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	items, err := s.repo.ListByRecipient(ctx, p.ID, limit)
	if err != nil {
		return nil, 0, err
	}
	items = visibility.OwnNotifications(p, items, func(n Notification) string { return n.RecipientID })

	unread, err := s.repo.CountUnread(ctx, p.ID)
	if err != nil {
		return nil, 0, err
	}

	return items, unread, nil
}

// MarkRead moves a notification from unread to read. Marking an already
// read notification succeeds; another recipient's notification is not found.
func (s *Service) MarkRead(ctx context.Context, p principal.Principal, notificationID string) error {
	notificationID = strings.TrimSpace(notificationID)
	if notificationID == "" {
		return ErrNotificationNotFound
	}

	matched, err := s.repo.MarkRead(ctx, p.ID, notificationID)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, p principal.Principal) (int64, error) {
	return s.repo.MarkAllRead(ctx, p.ID)
}
