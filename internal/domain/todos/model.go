package todos

import (
	"time"

	"gorm.io/gorm"
)

// Todo is a personal item owned by one principal.
type Todo struct {
	ID        string         `gorm:"type:uuid;primaryKey"`
	OwnerID   string         `gorm:"type:text;index;not null"`
	Title     string         `gorm:"not null"`
	Done      bool           `gorm:"not null;default:false"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type CreateTodoInput struct {
	Title string
}
