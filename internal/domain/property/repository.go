package property

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, p *Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Property, error) {
	var p Property
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) List(ctx context.Context, status Status, project string, limit, offset int) ([]Property, int64, error) {
	var props []Property
	var total int64

	q := r.db.WithContext(ctx).Model(&Property{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if project != "" {
		q = q.Where("project = ?", project)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&props).Error
	return props, total, err
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	return r.db.WithContext(ctx).Model(&Property{}).
		Where("id = ?", id).
		Update("status", status).Error
}
