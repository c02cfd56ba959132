package notifications

import (
	"context"

	notificationsdomain "campus-portal-go/internal/domain/notifications"
	"gorm.io/gorm"
)

const insertBatchSize = 500

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateBatch inserts items in one transaction so a fan-out is either fully
// recorded or not at all.
func (r *PostgresRepository) CreateBatch(ctx context.Context, items []notificationsdomain.Notification) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(items, insertBatchSize).Error
	})
}

func (r *PostgresRepository) ListByRecipient(ctx context.Context, recipientID string, limit int) ([]notificationsdomain.Notification, error) {
	query := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at desc, id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var items []notificationsdomain.Notification
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&notificationsdomain.Notification{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) MarkRead(ctx context.Context, recipientID, notificationID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&notificationsdomain.Notification{}).
		Where("id = ? AND recipient_id = ?", notificationID, recipientID).
		Update("read", true)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&notificationsdomain.Notification{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Update("read", true)
	return result.RowsAffected, result.Error
}

// DeleteBySource removes the notifications a broadcastable produced.
func DeleteBySource(ctx context.Context, db *gorm.DB, sourceType notificationsdomain.SourceType, sourceID string) (int64, error) {
	result := db.WithContext(ctx).
		Where("source_type = ? AND source_id = ?", sourceType, sourceID).
		Delete(&notificationsdomain.Notification{})
	return result.RowsAffected, result.Error
}
