package sale

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"estatecrm/internal/domain/property"
)

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// CreateWithInstallments writes the sale, its installment rows and the
// property status flip in a single transaction. The unique index on
// sales.property_id turns a double sale into ErrPropertySold.
func (r *GormRepository) CreateWithInstallments(ctx context.Context, s *Sale, installments []Installment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(s).Error; err != nil {
			return err
		}

		for i := range installments {
			installments[i].SaleID = s.ID
		}
		if len(installments) > 0 {
			if err := tx.Create(&installments).Error; err != nil {
				return err
			}
		}

		return tx.Model(&property.Property{}).
			Where("id = ?", s.PropertyID).
			Update("status", property.StatusSold).Error
	})

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrPropertySold
	}
	if err == nil {
		s.Installments = installments
	}
	return err
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*Sale, error) {
	var s Sale
	err := r.db.WithContext(ctx).Preload("Installments", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq ASC")
	}).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormRepository) List(ctx context.Context, f ListFilter) ([]Sale, int64, error) {
	var sales []Sale
	var total int64

	q := r.db.WithContext(ctx).Model(&Sale{})
	if f.ClientID > 0 {
		q = q.Where("client_id = ?", f.ClientID)
	}
	if f.AgentID > 0 {
		q = q.Where("agent_id = ?", f.AgentID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	err := q.Order("closed_at DESC").Limit(limit).Offset(f.Offset).Find(&sales).Error
	return sales, total, err
}

func (r *GormRepository) GetInstallment(ctx context.Context, saleID int64, seq int) (*Installment, error) {
	var ins Installment
	err := r.db.WithContext(ctx).
		Where("sale_id = ? AND seq = ?", saleID, seq).
		First(&ins).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ins, nil
}

func (r *GormRepository) MarkInstallmentPaid(ctx context.Context, installmentID int64) error {
	return r.db.WithContext(ctx).Model(&Installment{}).
		Where("id = ?", installmentID).
		Updates(map[string]any{"status": InstallmentPaid, "paid_at": gorm.Expr("CURRENT_TIMESTAMP")}).Error
}
