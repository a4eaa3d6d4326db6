package notification

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *Repository) ListForAgent(ctx context.Context, agentID int64, limit int) ([]Notification, error) {
	var list []Notification
	err := r.db.WithContext(ctx).
		Where("agent_id = ?", agentID).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *Repository) CountUnread(ctx context.Context, agentID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Notification{}).
		Where("agent_id = ? AND is_read = ?", agentID, false).
		Count(&n).Error
	return n, err
}

func (r *Repository) MarkAsRead(ctx context.Context, id, agentID int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ? AND agent_id = ?", id, agentID).
		Updates(map[string]any{"is_read": true, "read_at": now}).Error
}

func (r *Repository) MarkAllAsRead(ctx context.Context, agentID int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&Notification{}).
		Where("agent_id = ? AND is_read = ?", agentID, false).
		Updates(map[string]any{"is_read": true, "read_at": now}).Error
}
