package todos

import (
	"context"
	"time"

	todosdomain "campus-portal-go/internal/domain/todos"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListTodos(ctx context.Context, ownerID string) ([]todosdomain.Todo, error) {
	var items []todosdomain.Todo
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("done asc, created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) CreateTodo(ctx context.Context, todo *todosdomain.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// SetFlag overwrites done on a to-do the owner holds.
func (r *PostgresRepository) SetFlag(ctx context.Context, ownerID, todoID string, done bool) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&todosdomain.Todo{}).
		Where("id = ? AND owner_id = ?", todoID, ownerID).
		Updates(map[string]interface{}{
			"done":       done,
			"updated_at": time.Now().UTC(),
		})
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) SoftDeleteTodo(ctx context.Context, ownerID, todoID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&todosdomain.Todo{}, "owner_id = ? AND id = ?", ownerID, todoID)
	return result.RowsAffected > 0, result.Error
}
