package notifications

import (
	"time"

	"campus-portal-go/internal/domain/audience"
)

type Type string

const (
	TypeInfo      Type = "info"
	TypeUrgent    Type = "urgent"
	TypePlacement Type = "placement"
)

type SourceType string

const (
	SourceAnnouncement SourceType = "announcement"
	SourceEvent        SourceType = "event"
	SourceClub         SourceType = "club"
	SourcePlacement    SourceType = "placement"
)

// Severity flags a broadcastable. Unflagged broadcasts produce info
// notifications.
type Severity string

const (
	SeverityNormal    Severity = ""
	SeverityUrgent    Severity = "urgent"
	SeverityPlacement Severity = "placement"
)

type Notification struct {
	ID          string     `gorm:"type:uuid;primaryKey"`
	RecipientID string     `gorm:"type:text;not null;index"`
	Message     string     `gorm:"type:text;not null"`
	Type        Type       `gorm:"type:varchar(16);not null"`
	Read        bool       `gorm:"not null;default:false"`
	SourceType  SourceType `gorm:"type:varchar(32);not null;index:idx_notifications_source"`
	SourceID    string     `gorm:"type:uuid;not null;index:idx_notifications_source"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

// Broadcast describes an admin-created entity whose creation fans out one
// notification per audience member.
type Broadcast struct {
	SourceType SourceType
	SourceID   string
	Title      string
	Audience   audience.Directive
	Severity   Severity
	CreatedBy  string
}
