package rooms

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Schedule maps an hour of day to the booked activity label.
type Schedule map[int]string

// Timetable holds the static weekly-invariant schedule per room code.
type Timetable struct {
	rooms map[string]Schedule
}

type timetableDocument struct {
	Rooms map[string]map[int]string `yaml:"rooms"`
}

func NewTimetable(rooms map[string]Schedule) *Timetable {
	normalized := make(map[string]Schedule, len(rooms))
	for code, schedule := range rooms {
		normalized[normalizeCode(code)] = schedule
	}
	return &Timetable{rooms: normalized}
}

// LoadTimetable reads a YAML document of the form
//
//	rooms:
//	  LH-101:
//	    9: "CS101 Lecture"
//
// A missing file yields an empty timetable.
func LoadTimetable(path string) (*Timetable, error) {
	if strings.TrimSpace(path) == "" {
		return NewTimetable(nil), nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewTimetable(nil), nil
		}
		return nil, fmt.Errorf("read timetable: %w", err)
	}

	var doc timetableDocument
	if err := yaml.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("parse timetable: %w", err)
	}

	rooms := make(map[string]Schedule, len(doc.Rooms))
	for code, hours := range doc.Rooms {
		schedule := make(Schedule, len(hours))
		for hour, label := range hours {
			if hour < 0 || hour > 23 {
				return nil, fmt.Errorf("parse timetable: room %s: %w", code, ErrInvalidHour)
			}
			schedule[hour] = strings.TrimSpace(label)
		}
		rooms[code] = schedule
	}

	return NewTimetable(rooms), nil
}

func (t *Timetable) ScheduleFor(code string) Schedule {
	if t == nil {
		return nil
	}
	return t.rooms[normalizeCode(code)]
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
