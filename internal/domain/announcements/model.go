package announcements

import (
	"time"

	"campus-portal-go/internal/domain/audience"
)

type Announcement struct {
	ID        string             `gorm:"type:uuid;primaryKey"`
	Title     string             `gorm:"type:text;not null"`
	Body      string             `gorm:"type:text;not null"`
	Audience  audience.Directive `gorm:"type:varchar(16);not null;index"`
	Urgent    bool               `gorm:"not null;default:false"`
	CreatedBy string             `gorm:"type:text;not null"`
	CreatedAt time.Time          `gorm:"autoCreateTime"`
}

type CreateInput struct {
	Title    string
	Body     string
	Audience string
	Urgent   bool
}

// CreateResult carries the stored announcement and the fan-out outcome.
// Warning is set when notifications could not all be delivered; the
// announcement still exists.
type CreateResult struct {
	Announcement  Announcement
	NotifiedCount int
	Warning       error
}
