package rooms

import (
	"context"
	"errors"
	"time"

	roomsdomain "campus-portal-go/internal/domain/rooms"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) SetOverride(ctx context.Context, roomID string, value *string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&roomsdomain.Room{}).
		Where("id = ?", roomID).
		Updates(map[string]interface{}{
			"status_override": value,
			"updated_at":      time.Now().UTC(),
		})
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ListRooms(ctx context.Context) ([]roomsdomain.Room, error) {
	var rooms []roomsdomain.Room
	if err := r.db.WithContext(ctx).Order("building asc, code asc").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *PostgresRepository) GetRoom(ctx context.Context, roomID string) (*roomsdomain.Room, error) {
	var room roomsdomain.Room
	if err := r.db.WithContext(ctx).Where("id = ?", roomID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, roomsdomain.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}
