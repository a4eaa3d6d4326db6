package sale

import (
	"context"
	"log"
	"math"
	"time"

	"estatecrm/internal/domain/activity"
	"estatecrm/internal/domain/property"
)

// Service records closed deals and tracks commission installments.
type Service struct {
	repo       Repository
	clients    ClientDirectory
	properties PropertyDirectory
	activities ActivityRecorder
	notifier   NotificationSender
	now        func() time.Time
}

func NewService(repo Repository, clients ClientDirectory, properties PropertyDirectory, activities ActivityRecorder, notifier NotificationSender) *Service {
	return &Service{
		repo:       repo,
		clients:    clients,
		properties: properties,
		activities: activities,
		notifier:   notifier,
		now:        time.Now,
	}
}

func (s *Service) Create(ctx context.Context, actorID int64, req *CreateSaleRequest) (*Sale, error) {
	if req.SalePrice <= 0 {
		return nil, ErrInvalidPrice
	}
	if req.CommissionRate < 0 || req.CommissionRate > 100 {
		return nil, ErrInvalidRate
	}
	if req.InstallmentCount < 1 {
		return nil, ErrInvalidInstallments
	}

	cl, err := s.clients.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if cl == nil {
		return nil, ErrClientNotFound
	}

	p, err := s.properties.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPropertyNotFound
	}
	if p.Status == property.StatusSold {
		return nil, ErrPropertySold
	}

	closedAt := s.now()
	if req.ClosedAt != nil {
		closedAt = *req.ClosedAt
	}

	commission := math.Round(req.SalePrice*req.CommissionRate) / 100

	sl := &Sale{
		ClientID:         req.ClientID,
		PropertyID:       req.PropertyID,
		LeadID:           req.LeadID,
		AgentID:          actorID,
		SalePrice:        req.SalePrice,
		CommissionRate:   req.CommissionRate,
		CommissionAmount: commission,
		InstallmentCount: req.InstallmentCount,
		ClosedAt:         closedAt,
	}

	firstDue := closedAt.AddDate(0, 1, 0)
	installments := SplitCommission(commission, req.InstallmentCount, firstDue)

	if err := s.repo.CreateWithInstallments(ctx, sl, installments); err != nil {
		return nil, err
	}

	s.record(ctx, actorID, sl.ID, "recorded", "")
	if err := s.notifier.NotifySaleRecorded(ctx, actorID, sl.ID, sl.ClientID, sl.SalePrice); err != nil {
		log.Printf("notify sale recorded: %v", err)
	}

	return sl, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Sale, error) {
	sl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sl == nil {
		return nil, ErrSaleNotFound
	}
	return sl, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Sale, int64, error) {
	return s.repo.List(ctx, f)
}

// MarkInstallmentPaid settles one installment. Paying an installment that
// is already paid is a no-op, so retried payment callbacks stay safe.
func (s *Service) MarkInstallmentPaid(ctx context.Context, actorID, saleID int64, seq int) (*Installment, error) {
	if _, err := s.GetByID(ctx, saleID); err != nil {
		return nil, err
	}

	ins, err := s.repo.GetInstallment(ctx, saleID, seq)
	if err != nil {
		return nil, err
	}
	if ins == nil {
		return nil, ErrInstallmentNotFound
	}
	if ins.Status == InstallmentPaid {
		return ins, nil
	}

	if err := s.repo.MarkInstallmentPaid(ctx, ins.ID); err != nil {
		return nil, err
	}

	s.record(ctx, actorID, saleID, "installment_paid", "")

	ins.Status = InstallmentPaid
	return ins, nil
}

func (s *Service) record(ctx context.Context, actorID, saleID int64, action, detail string) {
	err := s.activities.Record(ctx, &activity.Activity{
		EntityKind: activity.KindSale,
		EntityID:   saleID,
		Action:     action,
		Detail:     detail,
		ActorID:    actorID,
	})
	if err != nil {
		log.Printf("record sale activity: %v", err)
	}
}
