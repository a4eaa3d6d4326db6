package lead

import "errors"

var (
	ErrLeadNotFound    = errors.New("lead not found")
	ErrInvalidStage    = errors.New("invalid lead stage")
	ErrLostNeedsReason = errors.New("moving a lead to lost requires a reason")
	ErrClientNotFound  = errors.New("client not found")
	ErrInvalidContact  = errors.New("invalid contact type")
	ErrNoteNotFound    = errors.New("note not found")
	ErrNoteNotAllowed  = errors.New("not allowed to delete this note")
)
