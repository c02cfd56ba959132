package placements

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
	repo         Repository
	applications toggle.RelationIndex
	toggles      *toggle.RelationStore
	notifier     notifications.Broadcaster
}

func NewService(repo Repository, applications toggle.Relations, notifier notifications.Broadcaster) *Service {
	return &Service{
		repo:         repo,
		applications: applications,
		toggles:      toggle.NewRelationStore(applications, ErrPlacementNotFound),
		notifier:     notifier,
	}
}

func (s *Service) List(ctx context.Context, p principal.Principal) ([]View, error) {
	audiences := visibility.Audiences(p.Role)
	if len(audiences) == 0 {
		return []View{}, nil
	}

	items, err := s.repo.ListPlacements(ctx, audiences)
	if err != nil {
		return nil, err
	}
	items = visibility.Broadcastables(p, items, func(pl Placement) audience.Directive { return pl.Audience })
	if len(items) == 0 {
		return []View{}, nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	counts, err := s.applications.CountByObjects(ctx, ids)
	if err != nil {
		return nil, err
	}
	applied, err := s.applications.ObjectsOfSubject(ctx, p.ID, ids)
	if err != nil {
		return nil, err
	}

	result := make([]View, 0, len(items))
	for _, item := range items {
		result = append(result, View{
			Placement:        item,
			ApplicationCount: counts[item.ID],
			HasApplied:       applied[item.ID],
		})
	}
	return result, nil
}

// Create opens a placement drive. Drives notify with the placement type
// regardless of audience.
func (s *Service) Create(ctx context.Context, p principal.Principal, input CreateInput) (*CreateResult, error) {
	if err := principal.RequireAdmin(p); err != nil {
		return nil, err
	}

	company := strings.TrimSpace(input.Company)
	if company == "" {
		return nil, ErrCompanyRequired
	}
	directive := audience.Students
	if strings.TrimSpace(input.Audience) != "" {
		parsed, err := audience.Parse(input.Audience)
		if err != nil {
			return nil, err
		}
		directive = parsed
	}

	placement := Placement{
		ID:          uuid.NewString(),
		Company:     company,
		Role:        strings.TrimSpace(input.Role),
		Description: strings.TrimSpace(input.Description),
		Deadline:    input.Deadline,
		Audience:    directive,
		CreatedBy:   p.ID,
	}
	if err := s.repo.CreatePlacement(ctx, &placement); err != nil {
		return nil, err
	}

	title := placement.Company
	if placement.Role != "" {
		title += " - " + placement.Role
	}

	result := &CreateResult{Placement: placement}
	result.NotifiedCount, result.Warning = s.notifier.Fanout(ctx, notifications.Broadcast{
		SourceType: notifications.SourcePlacement,
		SourceID:   placement.ID,
		Title:      title,
		Audience:   placement.Audience,
		Severity:   notifications.SeverityPlacement,
		CreatedBy:  p.ID,
	})
	return result, nil
}

func (s *Service) Delete(ctx context.Context, p principal.Principal, id string) error {
	if err := principal.RequireAdmin(p); err != nil {
		return err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return ErrPlacementNotFound
	}

	return s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.DeleteApplicationsByPlacement(ctx, id); err != nil {
			return err
		}
		if _, err := tx.DeleteNotificationsBySource(ctx, id); err != nil {
			return err
		}
		deleted, err := tx.DeletePlacement(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrPlacementNotFound
		}
		return nil
	})
}

// ToggleApplication adds or withdraws p's application.
func (s *Service) ToggleApplication(ctx context.Context, p principal.Principal, placementID string) (ApplicationStatus, error) {
	result, err := s.toggles.Toggle(ctx, toggle.Key{SubjectID: p.ID, ObjectID: placementID})
	if err != nil {
		return "", err
	}
	return StatusFor(result.State), nil
}
