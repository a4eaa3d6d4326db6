package auth

import "estatecrm/internal/domain/agent"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	Agent *agent.Agent `json:"agent"`
}
