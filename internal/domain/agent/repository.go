package agent

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

func (r *Repository) Create(ctx context.Context, a *Agent) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Agent, error) {
	var a Agent
	err := r.db.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*Agent, error) {
	var a Agent
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) List(ctx context.Context, office string) ([]Agent, error) {
	var agents []Agent
	q := r.db.WithContext(ctx).Order("name")
	if office != "" {
		q = q.Where("office = ?", office)
	}
	return agents, q.Find(&agents).Error
}

func (r *Repository) Update(ctx context.Context, a *Agent) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).Model(&Agent{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}
