package domain

import "errors"

// errors surfaced synchronously to callers of the engine. ownership
// mismatches are reported as ErrNotFound, never as a distinct error
var (
	ErrInsufficientBalance = errors.New("insufficient virtual balance")
	ErrInsufficientAssets  = errors.New("insufficient assets")
	ErrInvalidAllocation   = errors.New("total allocation must be 100%")
	ErrNotFound            = errors.New("not found")
	ErrInvalidChoice       = errors.New("invalid choice")
	ErrValidation          = errors.New("validation failed")
	ErrNarrativeParse      = errors.New("failed to parse narrative")
	ErrNarrativeProvider   = errors.New("narrative provider failed")
	ErrInvalidInput        = errors.New("invalid input")
	ErrScenarioInactive    = errors.New("scenario is no longer active")
)
