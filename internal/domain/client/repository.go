package client

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

func (r *Repository) Create(ctx context.Context, c *Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Client, error) {
	var c Client
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]Client, int64, error) {
	var clients []Client
	var total int64

	if err := r.db.WithContext(ctx).Model(&Client{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&clients).Error
	return clients, total, err
}

func (r *Repository) Update(ctx context.Context, c *Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}
