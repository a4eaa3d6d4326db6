package activity

import (
	"context"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Record(ctx context.Context, a *Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *Repository) ListForEntity(ctx context.Context, kind EntityKind, entityID int64, limit int) ([]Activity, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var entries []Activity
	err := r.db.WithContext(ctx).
		Where("entity_kind = ? AND entity_id = ?", kind, entityID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
