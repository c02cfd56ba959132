package clubs

import (
	"context"

	"campus-portal-go/internal/domain/audience"
	clubsdomain "campus-portal-go/internal/domain/clubs"
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

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(clubsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CreateClub(ctx context.Context, club *clubsdomain.Club) error {
	return r.db.WithContext(ctx).Create(club).Error
}

func (r *PostgresRepository) ListClubs(ctx context.Context, audiences []audience.Directive) ([]clubsdomain.Club, error) {
	var items []clubsdomain.Club
	if err := r.db.WithContext(ctx).
		Where("audience IN ?", audiences).
		Order("name asc, id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) DeleteClub(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&clubsdomain.Club{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) DeleteMembersByClub(ctx context.Context, clubID string) (int64, error) {
	return relation.DeleteByObject(ctx, r.db, relation.ClubMembers, clubID)
}

func (r *PostgresRepository) DeleteNotificationsBySource(ctx context.Context, sourceID string) (int64, error) {
	return notificationsrepo.DeleteBySource(ctx, r.db, notificationsdomain.SourceClub, sourceID)
}
