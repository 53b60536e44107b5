package charset

import (
	"errors"
	"fmt"
)

// ErrIllegalRange is matched by every range validation failure.
var ErrIllegalRange = errors.New("ERROR: Illegal range")

// ErrEmptyTarget is returned when a non-empty source has to be paired with an
// empty target and there is no last byte to repeat.
var ErrEmptyTarget = errors.New("target set is empty")

// RangeError describes where and why a range token was rejected.
type RangeError struct {
	Pos    int // index of the offending '-' in the decoded argument
	Reason string
}

// Error implements the error interface for RangeError.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s at offset %d", ErrIllegalRange.Error(), e.Reason, e.Pos)
}

// Is reports whether target is ErrIllegalRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrIllegalRange
}
