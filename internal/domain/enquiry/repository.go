package enquiry

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"estatecrm/internal/domain/client"
	"estatecrm/internal/domain/lead"
	"estatecrm/internal/domain/ownership"
)

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, e *Enquiry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*Enquiry, error) {
	var e Enquiry
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GormRepository) List(ctx context.Context, f ListFilter) ([]Enquiry, int64, error) {
	var enquiries []Enquiry
	var total int64

	q := r.db.WithContext(ctx).Model(&Enquiry{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Pool > 0 {
		q = q.Where("pool = ?", f.Pool)
	}
	if f.OwnerAgentID > 0 {
		q = q.Where("owner_agent_id = ?", f.OwnerAgentID)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&enquiries).Error
	return enquiries, total, err
}

func (r *GormRepository) Update(ctx context.Context, e *Enquiry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *GormRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	return r.db.WithContext(ctx).Model(&Enquiry{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// SetOwnerAgent writes both ownership columns in one UPDATE so a pooled
// record never keeps its pool after getting a named owner.
func (r *GormRepository) SetOwnerAgent(ctx context.Context, id, agentID int64) error {
	return r.db.WithContext(ctx).Model(&Enquiry{}).
		Where("id = ?", id).
		Updates(map[string]any{"owner_agent_id": agentID, "pool": 0}).Error
}

func (r *GormRepository) SetPool(ctx context.Context, id int64, pool ownership.Pool) error {
	return r.db.WithContext(ctx).Model(&Enquiry{}).
		Where("id = ?", id).
		Updates(map[string]any{"owner_agent_id": nil, "pool": int(pool)}).Error
}

func (r *GormRepository) ClearOwner(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&Enquiry{}).
		Where("id = ?", id).
		Updates(map[string]any{"owner_agent_id": nil, "pool": 0}).Error
}

// Convert runs the one multi-entity write of the pipeline. The enquiry
// status flip is a conditional update keyed on "not yet converted"; losing
// the race rolls the whole transaction back. The unique index on
// clients.source_enquiry_id backstops the same guarantee at the schema
// level.
func (r *GormRepository) Convert(ctx context.Context, enquiryID int64, cl *client.Client, ld *lead.Lead) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cl).Error; err != nil {
			return err
		}

		ld.ClientID = cl.ID
		if err := tx.Create(ld).Error; err != nil {
			return err
		}

		res := tx.Model(&Enquiry{}).
			Where("id = ? AND status <> ?", enquiryID, StatusConverted).
			Updates(map[string]any{
				"status":              StatusConverted,
				"converted_client_id": cl.ID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyConverted
		}
		return nil
	})

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyConverted
	}
	return err
}
