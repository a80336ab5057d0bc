package conversion

import "errors"

var (
	// ErrLeadNotFound: no lead matches the id within the caller's tenant scope.
	ErrLeadNotFound = errors.New("lead not found")

	// ErrAlreadyConverted: the lead already reached its terminal status.
	// Retrying will not help.
	ErrAlreadyConverted = errors.New("lead already converted")

	// ErrMissingOwner: a project or opportunity was requested but neither the
	// request nor the lead supplies an owner. Retry with an owner_id.
	ErrMissingOwner = errors.New("no owner could be resolved for the requested record")
)
