package note

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

func (r *Repository) Create(ctx context.Context, n *Note) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Note, error) {
	var n Note
	err := r.db.WithContext(ctx).First(&n, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *Repository) ListForEnquiry(ctx context.Context, enquiryID int64) ([]Note, error) {
	var notes []Note
	err := r.db.WithContext(ctx).
		Where("enquiry_id = ?", enquiryID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *Repository) ListForLead(ctx context.Context, leadID int64) ([]Note, error) {
	var notes []Note
	err := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Note{}, id).Error
}
