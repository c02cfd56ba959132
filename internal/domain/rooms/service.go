package rooms

import (
	"context"
	"time"

	"campus-portal-go/internal/domain/principal"
	"campus-portal-go/internal/domain/toggle"
)

type Service struct {
	repo      Repository
	timetable *Timetable
	overrides *toggle.FlagStore[*string]
	now       func() time.Time
	location  *time.Location
}

func NewService(repo Repository, timetable *Timetable, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:      repo,
		timetable: timetable,
		overrides: toggle.NewFlagStore[*string](overrideFlags{repo: repo}, ErrRoomNotFound),
		now:       time.Now,
		location:  location,
	}
}

// CurrentHour is the hour of day on the campus clock.
func (s *Service) CurrentHour() int {
	return s.now().In(s.location).Hour()
}

// ListStatuses resolves every room at hour, or at the current campus hour
// when hour is nil.
func (s *Service) ListStatuses(ctx context.Context, hour *int) ([]Status, error) {
	at := s.CurrentHour()
	if hour != nil {
		if *hour < 0 || *hour > 23 {
			return nil, ErrInvalidHour
		}
		at = *hour
	}

	rooms, err := s.repo.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]Status, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, Status{
			Room:      room,
			Hour:      at,
			Occupancy: Resolve(room, s.timetable.ScheduleFor(room.Code), at),
		})
	}
	return result, nil
}

// SetOverride lets an admin pin a room to available or occupied, or return
// it to schedule-derived status with "auto".
func (s *Service) SetOverride(ctx context.Context, p principal.Principal, roomID, value string) (*Status, error) {
	if err := principal.RequireAdmin(p); err != nil {
		return nil, err
	}

	override, err := ParseOverride(value)
	if err != nil {
		return nil, err
	}

	// Admin-wide: no owner scope.
	if _, err := s.overrides.SetFlag(ctx, "", roomID, override); err != nil {
		return nil, err
	}

	room, err := s.repo.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	hour := s.CurrentHour()
	return &Status{
		Room:      *room,
		Hour:      hour,
		Occupancy: Resolve(*room, s.timetable.ScheduleFor(room.Code), hour),
	}, nil
}
