package events

import (
	"context"
	"strings"

	"campus-portal-go/internal/domain/audience"
	"campus-portal-go/internal/domain/notifications"
	"campus-portal-go/internal/domain/principal"
	"campus-portal-go/internal/domain/toggle"
	"campus-portal-go/internal/domain/visibility"
	"github.com/google/uuid"
)

type Service struct {
	repo     Repository
	rsvps    toggle.RelationIndex
	toggles  *toggle.RelationStore
	notifier notifications.Broadcaster
}

func NewService(repo Repository, rsvps toggle.Relations, notifier notifications.Broadcaster) *Service {
	return &Service{
		repo:     repo,
		rsvps:    rsvps,
		toggles:  toggle.NewRelationStore(rsvps, ErrEventNotFound),
		notifier: notifier,
	}
}

// List returns the events p may read, annotated with RSVP counts and
// whether p has RSVPed.
func (s *Service) List(ctx context.Context, p principal.Principal) ([]View, error) {
	audiences := visibility.Audiences(p.Role)
	if len(audiences) == 0 {
		return []View{}, nil
	}

	items, err := s.repo.ListEvents(ctx, audiences)
	if err != nil {
		return nil, err
	}
	items = visibility.Broadcastables(p, items, func(e Event) audience.Directive { return e.Audience })
	if len(items) == 0 {
		return []View{}, nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	counts, err := s.rsvps.CountByObjects(ctx, ids)
	if err != nil {
		return nil, err
	}
	mine, err := s.rsvps.ObjectsOfSubject(ctx, p.ID, ids)
	if err != nil {
		return nil, err
	}

	result := make([]View, 0, len(items))
	for _, item := range items {
		result = append(result, View{
			Event:     item,
			RSVPCount: counts[item.ID],
			IsRSVPd:   mine[item.ID],
		})
	}
	return result, nil
}

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

	event := Event{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Location:    strings.TrimSpace(input.Location),
		StartsAt:    input.StartsAt,
		Audience:    directive,
		CreatedBy:   p.ID,
	}
	if err := s.repo.CreateEvent(ctx, &event); err != nil {
		return nil, err
	}

	result := &CreateResult{Event: event}
	result.NotifiedCount, result.Warning = s.notifier.Fanout(ctx, notifications.Broadcast{
		SourceType: notifications.SourceEvent,
		SourceID:   event.ID,
		Title:      event.Title,
		Audience:   event.Audience,
		CreatedBy:  p.ID,
	})
	return result, nil
}

// Delete removes the event together with its RSVPs and notifications.
func (s *Service) Delete(ctx context.Context, p principal.Principal, id string) error {
	if err := principal.RequireAdmin(p); err != nil {
		return err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return ErrEventNotFound
	}

	return s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.DeleteRSVPsByEvent(ctx, id); err != nil {
			return err
		}
		if _, err := tx.DeleteNotificationsBySource(ctx, id); err != nil {
			return err
		}
		deleted, err := tx.DeleteEvent(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrEventNotFound
		}
		return nil
	})
}

// ToggleRSVP flips p's RSVP on the event.
func (s *Service) ToggleRSVP(ctx context.Context, p principal.Principal, eventID string) (toggle.Result, error) {
	return s.toggles.Toggle(ctx, toggle.Key{SubjectID: p.ID, ObjectID: eventID})
}
