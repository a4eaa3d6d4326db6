package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// reservationIndexSQL keeps at most one active reservation per unit. The
// partial-index form is valid on both postgres and sqlite.
const reservationIndexSQL = `CREATE UNIQUE INDEX IF NOT EXISTS idx_active_reservation
ON bookings (property_id)
WHERE kind = 'reservation' AND status IN ('pending', 'confirmed')`

// EnsureReservationIndex creates the active-reservation index. AutoMigrate
// cannot express a partial index, so migration runs this alongside it.
func EnsureReservationIndex(db *gorm.DB) error {
	return db.Exec(reservationIndexSQL).Error
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, b *Booking) error {
	err := r.db.WithContext(ctx).Create(b).Error
	// idx_active_reservation backs the service-level availability check
	if isUniqueViolation(err) {
		return ErrPropertyHeld
	}
	return err
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlite surfaces unique violations by message only
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	var b Booking
	err := r.db.WithContext(ctx).First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormRepository) List(ctx context.Context, f ListFilter) ([]Booking, int64, error) {
	var bookings []Booking
	var total int64

	q := r.db.WithContext(ctx).Model(&Booking{})
	if f.ClientID > 0 {
		q = q.Where("client_id = ?", f.ClientID)
	}
	if f.PropertyID > 0 {
		q = q.Where("property_id = ?", f.PropertyID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&bookings).Error
	return bookings, total, err
}

func (r *GormRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	return r.db.WithContext(ctx).Model(&Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *GormRepository) CancelWithReason(ctx context.Context, id int64, reason string) error {
	return r.db.WithContext(ctx).Model(&Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": StatusCancelled, "cancel_reason": reason}).Error
}

func (r *GormRepository) UpdateDeposit(ctx context.Context, id int64, amount float64) error {
	return r.db.WithContext(ctx).Model(&Booking{}).
		Where("id = ?", id).
		Update("deposit_amount", amount).Error
}

func (r *GormRepository) HasActiveReservation(ctx context.Context, propertyID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Booking{}).
		Where("property_id = ? AND kind = ? AND status IN ?",
			propertyID, KindReservation, []Status{StatusPending, StatusConfirmed}).
		Count(&n).Error
	return n > 0, err
}
