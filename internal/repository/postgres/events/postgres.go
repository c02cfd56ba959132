package events

import (
	"context"

	"campus-portal-go/internal/domain/audience"
	eventsdomain "campus-portal-go/internal/domain/events"
	notificationsdomain "campus-portal-go/internal/domain/notifications"
	notificationsrepo "campus-portal-go/internal/repository/postgres/notifications"
	"campus-portal-go/internal/repository/postgres/relation"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(eventsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CreateEvent(ctx context.Context, event *eventsdomain.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// ListEvents orders upcoming events first, undated ones last.
func (r *PostgresRepository) ListEvents(ctx context.Context, audiences []audience.Directive) ([]eventsdomain.Event, error) {
	var items []eventsdomain.Event
	if err := r.db.WithContext(ctx).
		Where("audience IN ?", audiences).
		Order("starts_at asc nulls last, created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) DeleteEvent(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&eventsdomain.Event{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) DeleteRSVPsByEvent(ctx context.Context, eventID string) (int64, error) {
	return relation.DeleteByObject(ctx, r.db, relation.EventRSVPs, eventID)
}

func (r *PostgresRepository) DeleteNotificationsBySource(ctx context.Context, sourceID string) (int64, error) {
	return notificationsrepo.DeleteBySource(ctx, r.db, notificationsdomain.SourceEvent, sourceID)
}
