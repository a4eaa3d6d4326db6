package agent

import "errors"

var (
	ErrAgentNotFound = errors.New("agent not found")
	ErrEmailExists   = errors.New("email already exists")
	ErrInvalidRole   = errors.New("invalid role")
)
