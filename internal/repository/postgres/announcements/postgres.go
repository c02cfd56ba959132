package announcements

import (
	"context"

	announcementsdomain "campus-portal-go/internal/domain/announcements"
	"campus-portal-go/internal/domain/audience"
	notificationsdomain "campus-portal-go/internal/domain/notifications"
	notificationsrepo "campus-portal-go/internal/repository/postgres/notifications"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(announcementsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CreateAnnouncement(ctx context.Context, announcement *announcementsdomain.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

func (r *PostgresRepository) ListAnnouncements(ctx context.Context, audiences []audience.Directive) ([]announcementsdomain.Announcement, error) {
	var items []announcementsdomain.Announcement
	if err := r.db.WithContext(ctx).
		Where("audience IN ?", audiences).
		Order("created_at desc, id desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) DeleteAnnouncement(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&announcementsdomain.Announcement{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) DeleteNotificationsBySource(ctx context.Context, sourceID string) (int64, error) {
	return notificationsrepo.DeleteBySource(ctx, r.db, notificationsdomain.SourceAnnouncement, sourceID)
}
