package clubs

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
	members  toggle.RelationIndex
	toggles  *toggle.RelationStore
	notifier notifications.Broadcaster
}

func NewService(repo Repository, members toggle.Relations, notifier notifications.Broadcaster) *Service {
	return &Service{
		repo:     repo,
		members:  members,
		toggles:  toggle.NewRelationStore(members, ErrClubNotFound),
		notifier: notifier,
	}
}

func (s *Service) List(ctx context.Context, p principal.Principal) ([]View, error) {
	audiences := visibility.Audiences(p.Role)
	if len(audiences) == 0 {
		return []View{}, nil
	}

	items, err := s.repo.ListClubs(ctx, audiences)
	if err != nil {
		return nil, err
	}
	items = visibility.Broadcastables(p, items, func(c Club) audience.Directive { return c.Audience })
	if len(items) == 0 {
		return []View{}, nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	counts, err := s.members.CountByObjects(ctx, ids)
	if err != nil {
		return nil, err
	}
	joined, err := s.members.ObjectsOfSubject(ctx, p.ID, ids)
	if err != nil {
		return nil, err
	}

	result := make([]View, 0, len(items))
	for _, item := range items {
		result = append(result, View{
			Club:        item,
			MemberCount: counts[item.ID],
			IsMember:    joined[item.ID],
		})
	}
	return result, nil
}

func (s *Service) Create(ctx context.Context, p principal.Principal, input CreateInput) (*CreateResult, error) {
	if err := principal.RequireAdmin(p); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	directive, err := audience.Parse(input.Audience)
	if err != nil {
		return nil, err
	}

	club := Club{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Audience:    directive,
		CreatedBy:   p.ID,
	}
	if err := s.repo.CreateClub(ctx, &club); err != nil {
		return nil, err
	}

	result := &CreateResult{Club: club}
	result.NotifiedCount, result.Warning = s.notifier.Fanout(ctx, notifications.Broadcast{
		SourceType: notifications.SourceClub,
		SourceID:   club.ID,
		Title:      club.Name,
		Audience:   club.Audience,
		CreatedBy:  p.ID,
	})
	return result, nil
}

// Delete removes the club, its memberships and its notifications.
func (s *Service) Delete(ctx context.Context, p principal.Principal, id string) error {
	if err := principal.RequireAdmin(p); err != nil {
		return err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return ErrClubNotFound
	}

	return s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.DeleteMembersByClub(ctx, id); err != nil {
			return err
		}
		if _, err := tx.DeleteNotificationsBySource(ctx, id); err != nil {
			return err
		}
		deleted, err := tx.DeleteClub(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrClubNotFound
		}
		return nil
	})
}

// ToggleMembership joins p to the club or makes p leave it.
func (s *Service) ToggleMembership(ctx context.Context, p principal.Principal, clubID string) (toggle.Result, error) {
	return s.toggles.Toggle(ctx, toggle.Key{SubjectID: p.ID, ObjectID: clubID})
}
