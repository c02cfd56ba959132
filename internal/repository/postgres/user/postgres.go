package user

import (
	"context"
	"errors"
	"time"

	"campus-portal-go/internal/domain/principal"
	domain "campus-portal-go/internal/domain/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// UpsertProfile reports true when the profile is new or its role changed.
func (r *PostgresRepository) UpsertProfile(ctx context.Context, profile *domain.Profile) (bool, error) {
	changed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var previous domain.Profile
		err := tx.Select("role").Where("user_id = ?", profile.UserID).First(&previous).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			changed = true
		case err != nil:
			return err
		default:
			changed = previous.Role != profile.Role
		}

		updates := map[string]interface{}{
			"role":       profile.Role,
			"updated_at": time.Now().UTC(),
		}
		if profile.Email != nil {
			updates["email"] = profile.Email
		}
		if profile.Name != nil {
			updates["name"] = profile.Name
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(updates),
		}).Create(profile).Error
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

func (r *PostgresRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *PostgresRepository) ListIDsByRoles(ctx context.Context, roles []principal.Role) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&domain.Profile{}).
		Where("role IN ?", roles).
		Order("user_id asc").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
