package clubs

import (
	"time"

	"campus-portal-go/internal/domain/audience"
)

type Club struct {
	ID          string             `gorm:"type:uuid;primaryKey"`
	Name        string             `gorm:"type:text;not null"`
	Description string             `gorm:"type:text;not null;default:''"`
	Audience    audience.Directive `gorm:"type:varchar(16);not null;index"`
	CreatedBy   string             `gorm:"type:text;not null"`
	CreatedAt   time.Time          `gorm:"autoCreateTime"`
}

type Member struct {
	ClubID    string    `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:text;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Member) TableName() string {
	return "club_members"
}

type View struct {
	Club        Club
	MemberCount int64
	IsMember    bool
}

type CreateInput struct {
	Name        string
	Description string
	Audience    string
}

type CreateResult struct {
	Club          Club
	NotifiedCount int
	Warning       error
}
