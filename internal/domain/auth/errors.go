package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAgentDisabled      = errors.New("agent account is disabled")
)
