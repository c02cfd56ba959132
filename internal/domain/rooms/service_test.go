package rooms

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"campus-portal-go/internal/domain/principal"
)

type fakeRoomRepo struct {
	rooms map[string]*Room
	order []string
}

func newFakeRoomRepo(rooms ...Room) *fakeRoomRepo {
	repo := &fakeRoomRepo{rooms: make(map[string]*Room)}
	for i := range rooms {
		room := rooms[i]
		repo.rooms[room.ID] = &room
		repo.order = append(repo.order, room.ID)
	}
	return repo
}

func (r *fakeRoomRepo) SetOverride(ctx context.Context, entityID string, value *string) (bool, error) {
	room, ok := r.rooms[entityID]
	if !ok {
		return false, nil
	}
	room.StatusOverride = value
	return true, nil
}

func (r *fakeRoomRepo) ListRooms(ctx context.Context) ([]Room, error) {
	result := make([]Room, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, *r.rooms[id])
	}
	return result, nil
}

func (r *fakeRoomRepo) GetRoom(ctx context.Context, roomID string) (*Room, error) {
	room, ok := r.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	copy := *room
	return &copy, nil
}

func strPtr(value string) *string {
	return &value
}

func TestResolveOverrideBeatsSchedule(t *testing.T) {
	schedule := Schedule{14: "X"}

	available := Resolve(Room{StatusOverride: strPtr(OverrideAvailable)}, schedule, 14)
	if available.Occupied || available.Label != nil {
		t.Fatalf("expected available override to win, got %+v", available)
	}

	occupied := Resolve(Room{StatusOverride: strPtr(OverrideOccupied)}, Schedule{}, 9)
	if !occupied.Occupied || occupied.Label == nil || *occupied.Label != ManualOverrideLabel {
		t.Fatalf("expected manual override label, got %+v", occupied)
	}

	occupiedOverSchedule := Resolve(Room{StatusOverride: strPtr(OverrideOccupied)}, schedule, 14)
	if occupiedOverSchedule.Label == nil || *occupiedOverSchedule.Label != ManualOverrideLabel {
		t.Fatalf("expected manual override label over schedule label, got %+v", occupiedOverSchedule)
	}
}

func TestResolveAutoFollowsSchedule(t *testing.T) {
	schedule := Schedule{14: "Physics Lab"}

	busy := Resolve(Room{}, schedule, 14)
	if !busy.Occupied || busy.Label == nil || *busy.Label != "Physics Lab" {
		t.Fatalf("expected scheduled label, got %+v", busy)
	}

	free := Resolve(Room{}, schedule, 15)
	if free.Occupied || free.Label != nil {
		t.Fatalf("expected free room, got %+v", free)
	}
}

func TestListStatusesAtHour(t *testing.T) {
	repo := newFakeRoomRepo(
		Room{ID: "r-1", Code: "LH-101", Name: "Lecture Hall 101"},
		Room{ID: "r-2", Code: "LAB-2", Name: "Lab 2", StatusOverride: strPtr(OverrideAvailable)},
	)
	timetable := NewTimetable(map[string]Schedule{
		"lh-101": {10: "Algorithms"},
		"LAB-2":  {10: "Chemistry"},
	})
	svc := NewService(repo, timetable, time.UTC)

	hour := 10
	statuses, err := svc.ListStatuses(context.Background(), &hour)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if !statuses[0].Occupancy.Occupied || *statuses[0].Occupancy.Label != "Algorithms" {
		t.Fatalf("expected LH-101 occupied by Algorithms, got %+v", statuses[0].Occupancy)
	}
	if statuses[1].Occupancy.Occupied {
		t.Fatalf("expected LAB-2 override to keep it available, got %+v", statuses[1].Occupancy)
	}
}

func TestListStatusesDefaultsToCampusHour(t *testing.T) {
	repo := newFakeRoomRepo(Room{ID: "r-1", Code: "LH-101", Name: "Lecture Hall 101"})
	svc := NewService(repo, NewTimetable(map[string]Schedule{"LH-101": {8: "Morning Seminar"}}), time.UTC)
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC) }

	statuses, err := svc.ListStatuses(context.Background(), nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if statuses[0].Hour != 8 || !statuses[0].Occupancy.Occupied {
		t.Fatalf("expected occupied at hour 8, got %+v", statuses[0])
	}
}

func TestListStatusesInvalidHour(t *testing.T) {
	svc := NewService(newFakeRoomRepo(), NewTimetable(nil), time.UTC)
	hour := 24
	if _, err := svc.ListStatuses(context.Background(), &hour); !errors.Is(err, ErrInvalidHour) {
		t.Fatalf("expected ErrInvalidHour, got %v", err)
	}
}

func TestSetOverride(t *testing.T) {
	repo := newFakeRoomRepo(Room{ID: "r-1", Code: "LH-101", Name: "Lecture Hall 101"})
	svc := NewService(repo, NewTimetable(nil), time.UTC)
	admin := principal.Principal{ID: "adm-1", Role: principal.RoleAdmin}
	student := principal.Principal{ID: "stu-1", Role: principal.RoleStudent}

	if _, err := svc.SetOverride(context.Background(), student, "r-1", OverrideOccupied); !errors.Is(err, principal.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	status, err := svc.SetOverride(context.Background(), admin, "r-1", OverrideOccupied)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !status.Occupancy.Occupied || *status.Occupancy.Label != ManualOverrideLabel {
		t.Fatalf("expected manual override, got %+v", status.Occupancy)
	}

	if _, err := svc.SetOverride(context.Background(), admin, "r-1", OverrideAuto); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.rooms["r-1"].StatusOverride != nil {
		t.Fatalf("expected override cleared, got %v", *repo.rooms["r-1"].StatusOverride)
	}

	if _, err := svc.SetOverride(context.Background(), admin, "r-1", "closed"); !errors.Is(err, ErrInvalidOverride) {
		t.Fatalf("expected ErrInvalidOverride, got %v", err)
	}
	if _, err := svc.SetOverride(context.Background(), admin, "missing", OverrideOccupied); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestOverrideFlagsIgnoreOwnerScopedWrites(t *testing.T) {
	repo := newFakeRoomRepo(Room{ID: "r-1", Code: "LH-101", Name: "Lecture Hall 101"})
	flags := overrideFlags{repo: repo}

	matched, err := flags.SetFlag(context.Background(), "stu-1", "r-1", strPtr(OverrideOccupied))
	if err != nil || matched {
		t.Fatalf("expected no match for owner-scoped write, got matched=%v err=%v", matched, err)
	}
	if repo.rooms["r-1"].StatusOverride != nil {
		t.Fatalf("expected override untouched, got %v", *repo.rooms["r-1"].StatusOverride)
	}

	matched, err = flags.SetFlag(context.Background(), "", "r-1", strPtr(OverrideOccupied))
	if err != nil || !matched {
		t.Fatalf("expected match, got matched=%v err=%v", matched, err)
	}
	if got := repo.rooms["r-1"].StatusOverride; got == nil || *got != OverrideOccupied {
		t.Fatalf("expected occupied override, got %v", got)
	}
}

func TestLoadTimetable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timetable.yaml")
	doc := "rooms:\n  LH-101:\n    9: \"CS101 Lecture\"\n    14: Physics\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write timetable: %v", err)
	}

	timetable, err := LoadTimetable(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	schedule := timetable.ScheduleFor("lh-101")
	if schedule[9] != "CS101 Lecture" || schedule[14] != "Physics" {
		t.Fatalf("unexpected schedule %v", schedule)
	}

	missing, err := LoadTimetable(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("expected missing file to be tolerated, got %v", err)
	}
	if len(missing.ScheduleFor("LH-101")) != 0 {
		t.Fatalf("expected empty timetable")
	}
}

func TestLoadTimetableRejectsBadHour(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timetable.yaml")
	if err := os.WriteFile(path, []byte("rooms:\n  LH-101:\n    25: Late\n"), 0o600); err != nil {
		t.Fatalf("write timetable: %v", err)
	}
	if _, err := LoadTimetable(path); !errors.Is(err, ErrInvalidHour) {
		t.Fatalf("expected ErrInvalidHour, got %v", err)
	}
}
