package rooms

import "time"

// Override values stored in rooms.status_override. NULL means auto.
const (
	OverrideAvailable = "available"
	OverrideOccupied  = "occupied"
	OverrideAuto      = "auto"
)

const ManualOverrideLabel = "Manual Override"

type Room struct {
	ID             string    `gorm:"type:uuid;primaryKey"`
	Code           string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name           string    `gorm:"not null"`
	Building       string    `gorm:"not null;default:''"`
	StatusOverride *string   `gorm:"type:varchar(16);column:status_override"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

// Occupancy is derived per query and never persisted.
type Occupancy struct {
	Occupied bool
	Label    *string
}

type Status struct {
	Room      Room
	Hour      int
	Occupancy Occupancy
}
