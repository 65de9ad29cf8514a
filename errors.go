package draft

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry is returned when constructing a shape would violate
	// one of its invariants, such as a non-positive radius or a zero-length
	// line.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInvalidValue is returned by queries whose arguments are outside the
	// domain of the operation, such as normalizing a zero-length vector or
	// asking for the angle of a point that isn't on a circle.
	ErrInvalidValue = errors.New("invalid value")
)

func invalidGeometry(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidGeometry, fmt.Sprintf(format, args...))
}

func invalidValue(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...))
}
