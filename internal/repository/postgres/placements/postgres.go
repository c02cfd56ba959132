package placements

import (
	"context"

	"campus-portal-go/internal/domain/audience"
	notificationsdomain "campus-portal-go/internal/domain/notifications"
	placementsdomain "campus-portal-go/internal/domain/placements"
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

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(placementsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CreatePlacement(ctx context.Context, placement *placementsdomain.Placement) error {
	return r.db.WithContext(ctx).Create(placement).Error
}

func (r *PostgresRepository) ListPlacements(ctx context.Context, audiences []audience.Directive) ([]placementsdomain.Placement, error) {
	var items []placementsdomain.Placement
	if err := r.db.WithContext(ctx).
		Where("audience IN ?", audiences).
		Order("deadline asc nulls last, created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) DeletePlacement(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&placementsdomain.Placement{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) DeleteApplicationsByPlacement(ctx context.Context, placementID string) (int64, error) {
	return relation.DeleteByObject(ctx, r.db, relation.PlacementApplications, placementID)
}

func (r *PostgresRepository) DeleteNotificationsBySource(ctx context.Context, sourceID string) (int64, error) {
	return notificationsrepo.DeleteBySource(ctx, r.db, notificationsdomain.SourcePlacement, sourceID)
}
