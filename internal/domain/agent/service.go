package agent

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"estatecrm/internal/pkg/policy"
)

// Service handles agent administration.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req *CreateAgentRequest) (*Agent, error) {
	role := policy.Role(req.Role)
	if !policy.Valid(role) {
		return nil, ErrInvalidRole
	}

	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	a := &Agent{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         role,
		Office:       req.Office,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Agent, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAgentNotFound
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, office string) ([]Agent, error) {
	return s.repo.List(ctx, office)
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateAgentRequest) (*Agent, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Phone != nil {
		a.Phone = *req.Phone
	}
	if req.Role != nil {
		role := policy.Role(*req.Role)
		if !policy.Valid(role) {
			return nil, ErrInvalidRole
		}
		a.Role = role
	}
	if req.Office != nil {
		a.Office = *req.Office
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) SetActive(ctx context.Context, id int64, active bool) error {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.SetActive(ctx, a.ID, active)
}
