package user

import (
	"time"

	"campus-portal-go/internal/domain/principal"
)

// Profile is the directory entry of a principal. It is upserted from the
// verified token on every authenticated request.
type Profile struct {
	UserID    string         `gorm:"type:text;primaryKey"`
	Email     *string        `gorm:"type:text"`
	Name      *string        `gorm:"type:text"`
	Role      principal.Role `gorm:"type:varchar(16);not null;index"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

type UpsertProfileInput struct {
	UserID string
	Email  string
	Name   string
	Role   principal.Role
}
