package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"estatecrm/internal/domain/agent"
	jwtsvc "estatecrm/internal/pkg/jwt"
)

type Service struct {
	agents AgentRepository
	jwt    *jwtsvc.Service
}

func NewService(agents AgentRepository, jwt *jwtsvc.Service) *Service {
	return &Service{agents: agents, jwt: jwt}
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	a, err := s.agents.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrInvalidCredentials
	}
	if !a.IsActive {
		return nil, ErrAgentDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(a.ID, string(a.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, Agent: a}, nil
}

func (s *Service) Me(ctx context.Context, agentID int64) (*agent.Agent, error) {
	a, err := s.agents.GetByID(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, agent.ErrAgentNotFound
	}
	return a, nil
}
