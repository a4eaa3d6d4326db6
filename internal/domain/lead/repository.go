package lead

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"estatecrm/internal/domain/ownership"
)

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, l *Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*Lead, error) {
	var l Lead
	err := r.db.WithContext(ctx).First(&l, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *GormRepository) List(ctx context.Context, f ListFilter) ([]Lead, int64, error) {
	var leads []Lead
	var total int64

	q := r.db.WithContext(ctx).Model(&Lead{})
	if f.Stage != "" {
		q = q.Where("stage = ?", f.Stage)
	}
	if f.ClientID > 0 {
		q = q.Where("client_id = ?", f.ClientID)
	}
	if f.Pool > 0 {
		q = q.Where("pool = ?", f.Pool)
	}
	if f.OwnerAgentID > 0 {
		q = q.Where("owner_agent_id = ?", f.OwnerAgentID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&leads).Error
	return leads, total, err
}

func (r *GormRepository) Update(ctx context.Context, l *Lead) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *GormRepository) UpdateStage(ctx context.Context, id int64, stage Stage, lostReason string) error {
	return r.db.WithContext(ctx).Model(&Lead{}).
		Where("id = ?", id).
		Updates(map[string]any{"stage": stage, "lost_reason": lostReason}).Error
}

func (r *GormRepository) SetOwnerAgent(ctx context.Context, id, agentID int64) error {
	return r.db.WithContext(ctx).Model(&Lead{}).
		Where("id = ?", id).
		Updates(map[string]any{"owner_agent_id": agentID, "pool": 0}).Error
}

func (r *GormRepository) SetPool(ctx context.Context, id int64, pool ownership.Pool) error {
	return r.db.WithContext(ctx).Model(&Lead{}).
		Where("id = ?", id).
		Updates(map[string]any{"owner_agent_id": nil, "pool": int(pool)}).Error
}

func (r *GormRepository) ClearOwner(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&Lead{}).
		Where("id = ?", id).
		Updates(map[string]any{"owner_agent_id": nil, "pool": 0}).Error
}

func (r *GormRepository) CountByStage(ctx context.Context) (StageCounts, error) {
	rows, err := r.db.WithContext(ctx).Model(&Lead{}).
		Select("stage, COUNT(*) AS n").
		Group("stage").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(StageCounts)
	for rows.Next() {
		var stage Stage
		var n int64
		if err := rows.Scan(&stage, &n); err != nil {
			return nil, err
		}
		counts[stage] = n
	}
	return counts, rows.Err()
}
