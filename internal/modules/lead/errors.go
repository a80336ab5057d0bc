package lead

import "errors"

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrAlreadyConverted  = errors.New("lead already converted")
	ErrInvalidTransition = errors.New("invalid status transition")
)
