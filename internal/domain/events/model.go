package events

import (
	"time"

	"campus-portal-go/internal/domain/audience"
)

type Event struct {
	ID          string             `gorm:"type:uuid;primaryKey"`
	Title       string             `gorm:"type:text;not null"`
	Description string             `gorm:"type:text;not null;default:''"`
	Location    string             `gorm:"type:text;not null;default:''"`
	StartsAt    *time.Time         `gorm:"type:timestamptz"`
	Audience    audience.Directive `gorm:"type:varchar(16);not null;index"`
	CreatedBy   string             `gorm:"type:text;not null"`
	CreatedAt   time.Time          `gorm:"autoCreateTime"`
}

// RSVP is one row of the event_rsvps relation.
type RSVP struct {
	EventID   string    `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:text;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (RSVP) TableName() string {
	return "event_rsvps"
}

// View is an event annotated for the caller.
type View struct {
	Event     Event
	RSVPCount int64
	IsRSVPd   bool
}

type CreateInput struct {
	Title       string
	Description string
	Location    string
	StartsAt    *time.Time
	Audience    string
}

type CreateResult struct {
	Event         Event
	NotifiedCount int
	Warning       error
}
