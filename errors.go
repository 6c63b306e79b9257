package wealthplan

import (
	"errors"
	"fmt"
)

// Error kinds returned by the model mutators. Callers classify failures with
// errors.Is; every failed mutation leaves the portfolio unchanged.
var (
	// ErrInvalidValue reports a numeric or textual field that failed
	// validation (non-finite, negative where disallowed, empty name).
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidMode reports an operation invoked against an asset in the
	// wrong planning mode.
	ErrInvalidMode = errors.New("invalid mode")
	// ErrDuplicateName reports a rename that would produce two assets with
	// the same name.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrNotFound reports an asset id that does not exist in the portfolio.
	ErrNotFound = errors.New("asset not found")
	// ErrPlanExists reports an attempt to save a named plan over an existing
	// file without asking for an overwrite.
	ErrPlanExists = errors.New("plan already exists")
)

func errInvalidValue(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidValue)...)
}
