package user

import (
	"context"
	"strings"

	"campus-portal-go/internal/domain/principal"
)

// RoleChangeListener is told when a principal joined or changed role, so
// cached audiences can be dropped.
type RoleChangeListener interface {
	Invalidate()
}

type Service struct {
	repo      Repository
	listeners []RoleChangeListener
}

func NewService(repo Repository, listeners ...RoleChangeListener) *Service {
	return &Service{repo: repo, listeners: listeners}
}

func (s *Service) UpsertProfile(ctx context.Context, input UpsertProfileInput) error {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return ErrUserIDRequired
	}
	role, err := principal.ParseRole(string(input.Role))
	if err != nil {
		return err
	}

	profile := Profile{UserID: userID, Role: role}
	if email := strings.TrimSpace(input.Email); email != "" {
		profile.Email = &email
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		profile.Name = &name
	}

	changed, err := s.repo.UpsertProfile(ctx, &profile)
	if err != nil {
		return err
	}
	if changed {
		for _, listener := range s.listeners {
			listener.Invalidate()
		}
	}
	return nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// ListIDsByRoles backs audience resolution.
func (s *Service) ListIDsByRoles(ctx context.Context, roles []principal.Role) ([]string, error) {
	if len(roles) == 0 {
		return []string{}, nil
	}
	return s.repo.ListIDsByRoles(ctx, roles)
}
