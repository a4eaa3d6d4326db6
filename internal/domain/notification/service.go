package notification

import (
	"context"
	"fmt"
)

type Service struct {
	repo *Repository
	hub  *Hub
}

func NewService(repo *Repository, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

func (s *Service) Create(ctx context.Context, agentID int64, t Type, title, body string, data map[string]any) error {
	n := &Notification{
		AgentID: agentID,
		Type:    t,
		Title:   title,
		Body:    body,
		IsRead:  false,
	}
	if err := n.SetData(data); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Push(agentID, n)
	}
	return nil
}

func (s *Service) ListForAgent(ctx context.Context, agentID int64, limit int) ([]Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := s.repo.ListForAgent(ctx, agentID, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, agentID)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, agentID int64) error {
	return s.repo.MarkAsRead(ctx, notificationID, agentID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, agentID int64) error {
	return s.repo.MarkAllAsRead(ctx, agentID)
}

func (s *Service) NotifyEnquiryAssigned(ctx context.Context, agentID, enquiryID int64, enquiryName string) error {
	return s.Create(
		ctx,
		agentID,
		TypeEnquiryAssigned,
		"New enquiry assigned",
		fmt.Sprintf("Enquiry from %s is now on your desk", enquiryName),
		map[string]any{"enquiry_id": enquiryID},
	)
}

func (s *Service) NotifyLeadAssigned(ctx context.Context, agentID, leadID int64, leadNumber string) error {
	return s.Create(
		ctx,
		agentID,
		TypeLeadAssigned,
		"Lead assigned",
		fmt.Sprintf("Lead %s is now on your desk", leadNumber),
		map[string]any{"lead_id": leadID},
	)
}

func (s *Service) NotifyLeadStageChanged(ctx context.Context, agentID, leadID int64, leadNumber, stage string) error {
	return s.Create(
		ctx,
		agentID,
		TypeLeadStageChanged,
		"Lead stage changed",
		fmt.Sprintf("Lead %s moved to %s", leadNumber, stage),
		map[string]any{"lead_id": leadID, "stage": stage},
	)
}

func (s *Service) NotifyEnquiryConverted(ctx context.Context, agentID, enquiryID, clientID, leadID int64) error {
	return s.Create(
		ctx,
		agentID,
		TypeEnquiryConverted,
		"Enquiry converted",
		"Enquiry converted to client and lead",
		map[string]any{"enquiry_id": enquiryID, "client_id": clientID, "lead_id": leadID},
	)
}

func (s *Service) NotifyBookingConfirmed(ctx context.Context, agentID, bookingID, clientID int64) error {
	return s.Create(
		ctx,
		agentID,
		TypeBookingConfirmed,
		"Booking confirmed",
		"A booking for your client was confirmed",
		map[string]any{"booking_id": bookingID, "client_id": clientID},
	)
}

func (s *Service) NotifySaleRecorded(ctx context.Context, agentID, saleID, clientID int64, amount float64) error {
	return s.Create(
		ctx,
		agentID,
		TypeSaleRecorded,
		"Sale recorded",
		fmt.Sprintf("A sale of %.2f was recorded for your client", amount),
		map[string]any{"sale_id": saleID, "client_id": clientID},
	)
}
