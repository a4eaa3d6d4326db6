package booking

import (
	"context"
	"log"
	"strings"
	"time"

	"estatecrm/internal/domain/activity"
	"estatecrm/internal/domain/property"
)

// Service owns viewings and reservations. A reservation holds its unit
// (property flips to reserved) until it is cancelled or the sale closes.
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

func (s *Service) Create(ctx context.Context, actorID int64, req *CreateBookingRequest) (*Booking, error) {
	kind := Kind(req.Kind)
	if !ValidKind(kind) {
		return nil, ErrInvalidKind
	}

	if kind == KindViewing {
		if req.ScheduledAt == nil || req.ScheduledAt.Before(s.now()) {
			return nil, ErrPastSchedule
		}
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

	if kind == KindReservation {
		if p.Status != property.StatusAvailable {
			return nil, ErrPropertyHeld
		}
		held, err := s.repo.HasActiveReservation(ctx, req.PropertyID)
		if err != nil {
			return nil, err
		}
		if held {
			return nil, ErrPropertyHeld
		}
	}

	b := &Booking{
		ClientID:    req.ClientID,
		PropertyID:  req.PropertyID,
		AgentID:     actorID,
		Kind:        kind,
		Status:      StatusPending,
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.record(ctx, actorID, b.ID, "created", string(kind))
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Booking, int64, error) {
	return s.repo.List(ctx, f)
}

// Confirm moves a pending booking to confirmed. Confirming a reservation
// flips the unit to reserved and notifies the booking agent.
func (s *Service) Confirm(ctx context.Context, actorID, id int64) (*Booking, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusPending {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusConfirmed); err != nil {
		return nil, err
	}

	if b.Kind == KindReservation {
		if err := s.properties.UpdateStatus(ctx, b.PropertyID, property.StatusReserved); err != nil {
			log.Printf("reserve property %d: %v", b.PropertyID, err)
		}
	}

	s.record(ctx, actorID, id, "confirmed", "")
	if err := s.notifier.NotifyBookingConfirmed(ctx, b.AgentID, b.ID, b.ClientID); err != nil {
		log.Printf("notify booking confirmed: %v", err)
	}

	b.Status = StatusConfirmed
	return b, nil
}

// Cancel closes an active booking with a mandatory reason. Cancelling a
// confirmed reservation releases the unit back to available.
func (s *Service) Cancel(ctx context.Context, actorID, id int64, reason string) (*Booking, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrCancelNeedsReason
	}

	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.Active() {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.CancelWithReason(ctx, id, reason); err != nil {
		return nil, err
	}

	if b.Kind == KindReservation && b.Status == StatusConfirmed {
		if err := s.properties.UpdateStatus(ctx, b.PropertyID, property.StatusAvailable); err != nil {
			log.Printf("release property %d: %v", b.PropertyID, err)
		}
	}

	s.record(ctx, actorID, id, "cancelled", reason)

	b.Status = StatusCancelled
	b.CancelReason = reason
	return b, nil
}

// Complete marks a confirmed booking done. Completing a viewing is a plain
// close; a completed reservation keeps the unit reserved for the sale.
func (s *Service) Complete(ctx context.Context, actorID, id int64) (*Booking, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusConfirmed {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCompleted); err != nil {
		return nil, err
	}

	s.record(ctx, actorID, id, "completed", "")

	b.Status = StatusCompleted
	return b, nil
}

// UpdateDeposit records a deposit payment. A deposit on a pending booking
// confirms it in the same call.
func (s *Service) UpdateDeposit(ctx context.Context, actorID, id int64, amount float64) (*Booking, error) {
	if amount < 0 {
		return nil, ErrInvalidDeposit
	}

	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.Active() {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateDeposit(ctx, id, amount); err != nil {
		return nil, err
	}
	b.DepositAmount = amount

	if amount > 0 && b.Status == StatusPending {
		return s.Confirm(ctx, actorID, id)
	}

	s.record(ctx, actorID, id, "deposit_updated", "")
	return b, nil
}

func (s *Service) record(ctx context.Context, actorID, bookingID int64, action, detail string) {
	err := s.activities.Record(ctx, &activity.Activity{
		EntityKind: activity.KindBooking,
		EntityID:   bookingID,
		Action:     action,
		Detail:     detail,
		ActorID:    actorID,
	})
	if err != nil {
		log.Printf("record booking activity: %v", err)
	}
}
