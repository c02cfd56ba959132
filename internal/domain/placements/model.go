package placements

import (
	"time"

	"campus-portal-go/internal/domain/audience"
	"campus-portal-go/internal/domain/toggle"
)

type Placement struct {
	ID          string             `gorm:"type:uuid;primaryKey"`
	Company     string             `gorm:"type:text;not null"`
	Role        string             `gorm:"type:text;not null;default:''"`
	Description string             `gorm:"type:text;not null;default:''"`
	Deadline    *time.Time         `gorm:"type:timestamptz"`
	Audience    audience.Directive `gorm:"type:varchar(16);not null;index"`
	CreatedBy   string             `gorm:"type:text;not null"`
	CreatedAt   time.Time          `gorm:"autoCreateTime"`
}

type Application struct {
	PlacementID string    `gorm:"type:uuid;primaryKey"`
	UserID      string    `gorm:"type:text;primaryKey"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Application) TableName() string {
	return "placement_applications"
}

// ApplicationStatus is the wire name of an application toggle outcome.
type ApplicationStatus string

const (
	StatusAdded   ApplicationStatus = "added"
	StatusRemoved ApplicationStatus = "removed"
)

func StatusFor(state toggle.State) ApplicationStatus {
	if state == toggle.StateJoined {
		return StatusAdded
	}
	return StatusRemoved
}

type View struct {
	Placement        Placement
	ApplicationCount int64
	HasApplied       bool
}

type CreateInput struct {
	Company     string
	Role        string
	Description string
	Deadline    *time.Time
	// Audience defaults to students when empty.
	Audience string
}

type CreateResult struct {
	Placement     Placement
	NotifiedCount int
	Warning       error
}
