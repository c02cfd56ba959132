package portalclient

import (
	"context"
	"time"

	"campus-portal-go/pkg/logger"
	"campus-portal-go/pkg/synccache"
)

type SessionOptions struct {
	// Interval is the poll period shared by every resource cache.
	Interval time.Duration
	Clock    synccache.Clock
	Log      logger.Logger
	// OnRollback surfaces a failed optimistic change to the user.
	OnRollback func(resource, key string, err error)
}

// Session owns one cache per resource for a signed-in user. Start it after
// login and Close it on logout.
type Session struct {
	client *Client

	Announcements *synccache.Cache[Announcement]
	Events        *synccache.Cache[Event]
	Clubs         *synccache.Cache[Club]
	Placements    *synccache.Cache[Placement]
	Todos         *synccache.Cache[Todo]
	Rooms         *synccache.Cache[Room]
	Notifications *synccache.Cache[Notification]
}

func NewSession(client *Client, opts SessionOptions) *Session {
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}

	return &Session{
		client: client,
		Announcements: synccache.New(cacheOptions(opts, "announcements",
			func(a Announcement) string { return a.ID }, client.ListAnnouncements)),
		Events: synccache.New(cacheOptions(opts, "events",
			func(e Event) string { return e.ID }, client.ListEvents)),
		Clubs: synccache.New(cacheOptions(opts, "clubs",
			func(c Club) string { return c.ID }, client.ListClubs)),
		Placements: synccache.New(cacheOptions(opts, "placements",
			func(p Placement) string { return p.ID }, client.ListPlacements)),
		Todos: synccache.New(cacheOptions(opts, "todos",
			func(t Todo) string { return t.ID }, client.ListTodos)),
		Rooms: synccache.New(cacheOptions(opts, "rooms",
			func(r Room) string { return r.ID }, client.ListRooms)),
		Notifications: synccache.New(cacheOptions(opts, "notifications",
			func(n Notification) string { return n.ID }, func(ctx context.Context) ([]Notification, error) {
				page, err := client.ListNotifications(ctx)
				if err != nil {
					return nil, err
				}
				return page.Items, nil
			})),
	}
}

func cacheOptions[T any](opts SessionOptions, resource string, key func(T) string, fetch func(context.Context) ([]T, error)) synccache.Options[T] {
	options := synccache.Options[T]{
		Key:      key,
		Fetch:    fetch,
		Interval: opts.Interval,
		Clock:    opts.Clock,
		Log:      opts.Log.With("resource", resource),
	}
	if opts.OnRollback != nil {
		options.OnRollback = func(key string, err error) {
			opts.OnRollback(resource, key, err)
		}
	}
	return options
}

func (s *Session) Start(ctx context.Context) {
	s.Announcements.Start(ctx)
	s.Events.Start(ctx)
	s.Clubs.Start(ctx)
	s.Placements.Start(ctx)
	s.Todos.Start(ctx)
	s.Rooms.Start(ctx)
	s.Notifications.Start(ctx)
}

func (s *Session) Close() {
	s.Announcements.Close()
	s.Events.Close()
	s.Clubs.Close()
	s.Placements.Close()
	s.Todos.Close()
	s.Rooms.Close()
	s.Notifications.Close()
}

// ToggleRSVP flips the RSVP locally, then confirms it with the server.
func (s *Session) ToggleRSVP(ctx context.Context, eventID string) (Event, error) {
	flip := func(e Event) Event {
		e.IsRSVPd = !e.IsRSVPd
		e.RSVPCount += delta(e.IsRSVPd)
		return e
	}
	return s.Events.Do(ctx, synccache.Mutation[Event]{Key: eventID, Apply: flip}, func(ctx context.Context, optimistic Event) (Event, error) {
		status, err := s.client.ToggleRSVP(ctx, eventID)
		if err != nil {
			return Event{}, err
		}
		if joined := status == StatusJoined; joined != optimistic.IsRSVPd {
			return flip(optimistic), nil
		}
		return optimistic, nil
	})
}

func (s *Session) ToggleMembership(ctx context.Context, clubID string) (Club, error) {
	flip := func(c Club) Club {
		c.IsMember = !c.IsMember
		c.MemberCount += delta(c.IsMember)
		return c
	}
	return s.Clubs.Do(ctx, synccache.Mutation[Club]{Key: clubID, Apply: flip}, func(ctx context.Context, optimistic Club) (Club, error) {
		status, err := s.client.ToggleMembership(ctx, clubID)
		if err != nil {
			return Club{}, err
		}
		if joined := status == StatusJoined; joined != optimistic.IsMember {
			return flip(optimistic), nil
		}
		return optimistic, nil
	})
}

func (s *Session) ToggleApplication(ctx context.Context, placementID string) (Placement, error) {
	flip := func(p Placement) Placement {
		p.HasApplied = !p.HasApplied
		p.ApplicationCount += delta(p.HasApplied)
		return p
	}
	return s.Placements.Do(ctx, synccache.Mutation[Placement]{Key: placementID, Apply: flip}, func(ctx context.Context, optimistic Placement) (Placement, error) {
		status, err := s.client.ToggleApplication(ctx, placementID)
		if err != nil {
			return Placement{}, err
		}
		if added := status == StatusAdded; added != optimistic.HasApplied {
			return flip(optimistic), nil
		}
		return optimistic, nil
	})
}

func (s *Session) SetTodoDone(ctx context.Context, todoID string, done bool) (Todo, error) {
	set := func(t Todo) Todo {
		t.Done = done
		return t
	}
	return s.Todos.Do(ctx, synccache.Mutation[Todo]{Key: todoID, Apply: set}, func(ctx context.Context, optimistic Todo) (Todo, error) {
		confirmed, err := s.client.SetTodoDone(ctx, todoID, done)
		if err != nil {
			return Todo{}, err
		}
		optimistic.Done = confirmed
		return optimistic, nil
	})
}

// SetRoomStatus shows an available or occupied override at once. With auto
// the timetable status is unknown locally, so only the override is cleared
// until the server answers.
func (s *Session) SetRoomStatus(ctx context.Context, roomID, status string) (Room, error) {
	set := func(r Room) Room {
		switch status {
		case RoomAvailable:
			r.StatusOverride = &status
			r.Occupied = false
			r.Label = nil
		case RoomOccupied:
			label := manualOverrideLabel
			r.StatusOverride = &status
			r.Occupied = true
			r.Label = &label
		default:
			r.StatusOverride = nil
		}
		return r
	}
	return s.Rooms.Do(ctx, synccache.Mutation[Room]{Key: roomID, Apply: set}, func(ctx context.Context, optimistic Room) (Room, error) {
		room, err := s.client.SetRoomStatus(ctx, roomID, status)
		if err != nil {
			return Room{}, err
		}
		return *room, nil
	})
}

func (s *Session) MarkNotificationRead(ctx context.Context, notificationID string) (Notification, error) {
	markRead := func(n Notification) Notification {
		n.Read = true
		return n
	}
	return s.Notifications.Do(ctx, synccache.Mutation[Notification]{Key: notificationID, Apply: markRead}, func(ctx context.Context, optimistic Notification) (Notification, error) {
		if err := s.client.MarkNotificationRead(ctx, notificationID); err != nil {
			return Notification{}, err
		}
		return optimistic, nil
	})
}

// UnreadCount counts unread notifications in the cached snapshot.
func (s *Session) UnreadCount() int {
	count := 0
	for _, n := range s.Notifications.Snapshot() {
		if !n.Read {
			count++
		}
	}
	return count
}

func delta(on bool) int64 {
	if on {
		return 1
	}
	return -1
}
