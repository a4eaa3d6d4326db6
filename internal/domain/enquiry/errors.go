package enquiry

import "errors"

var (
	ErrEnquiryNotFound  = errors.New("enquiry not found")
	ErrAlreadyConverted = errors.New("enquiry already converted")
	ErrInvalidStatus    = errors.New("invalid enquiry status")
	ErrBlankLeadTitle   = errors.New("lead title must not be blank")
	ErrInvalidContact   = errors.New("invalid contact type")
	ErrNoteNotFound     = errors.New("note not found")
	ErrNoteNotAllowed   = errors.New("not allowed to delete this note")
	ErrNothingToImport  = errors.New("import payload is empty")

	// ErrStatusReserved guards the converted status: it is only reachable
	// through the conversion operation, and never left once set.
	ErrStatusReserved = errors.New("converted status is set by conversion only")
)
