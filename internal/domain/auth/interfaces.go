package auth

import (
	"context"

	"estatecrm/internal/domain/agent"
)

// AgentRepository is the slice of the agent repo that auth needs.
type AgentRepository interface {
	GetByEmail(ctx context.Context, email string) (*agent.Agent, error)
	GetByID(ctx context.Context, id int64) (*agent.Agent, error)
}
