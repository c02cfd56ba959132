package relation

import (
	"context"
	"fmt"
	"time"

	"campus-portal-go/internal/domain/toggle"
	"campus-portal-go/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Table describes a relation table keyed by (object, subject) with a
// unique constraint on the pair.
type Table struct {
	Name          string
	ObjectColumn  string
	SubjectColumn string
	ObjectTable   string
}

var (
	EventRSVPs = Table{
		Name:          "event_rsvps",
		ObjectColumn:  "event_id",
		SubjectColumn: "user_id",
		ObjectTable:   "events",
	}
	ClubMembers = Table{
		Name:          "club_members",
		ObjectColumn:  "club_id",
		SubjectColumn: "user_id",
		ObjectTable:   "clubs",
	}
	PlacementApplications = Table{
		Name:          "placement_applications",
		ObjectColumn:  "placement_id",
		SubjectColumn: "user_id",
		ObjectTable:   "placements",
	}
)

type PostgresRepository struct {
	db    *gorm.DB
	table Table
	log   logger.Logger
}

func NewPostgres(db *gorm.DB, table Table, log logger.Logger) *PostgresRepository {
	if log == nil {
		log = logger.Nop()
	}
	return &PostgresRepository{db: db, table: table, log: log}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(toggle.RelationRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx, table: r.table, log: r.log})
	})
}

func (r *PostgresRepository) ObjectExists(ctx context.Context, objectID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table(r.table.ObjectTable).
		Where("id = ?", objectID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, key toggle.Key) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table(r.table.Name).
		Where(r.pairClause(), key.ObjectID, key.SubjectID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, key toggle.Key) (bool, error) {
	result := r.db.WithContext(ctx).
		Table(r.table.Name).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(map[string]interface{}{
			r.table.ObjectColumn:  key.ObjectID,
			r.table.SubjectColumn: key.SubjectID,
			"created_at":          time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		r.log.Debug("relation.insert: conflict ignored", "table", r.table.Name, "object_id", key.ObjectID, "subject_id", key.SubjectID)
		return false, nil
	}
	return true, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, key toggle.Key) (bool, error) {
	result := r.db.WithContext(ctx).
		Exec(fmt.Sprintf("DELETE FROM %s WHERE %s", r.table.Name, r.pairClause()), key.ObjectID, key.SubjectID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CountByObjects(ctx context.Context, objectIDs []string) (map[string]int64, error) {
	result := make(map[string]int64, len(objectIDs))
	if len(objectIDs) == 0 {
		return result, nil
	}

	type row struct {
		ObjectID string `gorm:"column:object_id"`
		Total    int64  `gorm:"column:total"`
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Table(r.table.Name).
		Select(fmt.Sprintf("%s as object_id, COUNT(*) as total", r.table.ObjectColumn)).
		Where(fmt.Sprintf("%s IN ?", r.table.ObjectColumn), objectIDs).
		Group(r.table.ObjectColumn).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, item := range rows {
		result[item.ObjectID] = item.Total
	}
	return result, nil
}

func (r *PostgresRepository) ObjectsOfSubject(ctx context.Context, subjectID string, objectIDs []string) (map[string]bool, error) {
	result := make(map[string]bool, len(objectIDs))
	if len(objectIDs) == 0 || subjectID == "" {
		return result, nil
	}

	var ids []string
	if err := r.db.WithContext(ctx).
		Table(r.table.Name).
		Where(fmt.Sprintf("%s = ? AND %s IN ?", r.table.SubjectColumn, r.table.ObjectColumn), subjectID, objectIDs).
		Pluck(r.table.ObjectColumn, &ids).Error; err != nil {
		return nil, err
	}

	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}

// DeleteByObject removes every row pointing at objectID. Parent
// repositories call it inside their delete transaction.
func DeleteByObject(ctx context.Context, db *gorm.DB, table Table, objectID string) (int64, error) {
	result := db.WithContext(ctx).
		Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table.Name, table.ObjectColumn), objectID)
	return result.RowsAffected, result.Error
}

func (r *PostgresRepository) pairClause() string {
	return fmt.Sprintf("%s = ? AND %s = ?", r.table.ObjectColumn, r.table.SubjectColumn)
}
