package tablet

import (
	"errors"
	"fmt"
)

// Sentinel errors for the tablet package.
var (
	// ErrInvalidViewport is returned when viewport constants do not yield
	// a positive, finite scale.
	ErrInvalidViewport = errors.New("tablet: invalid viewport")

	// ErrInvalidGeometry is wrapped by every GeometryError.
	ErrInvalidGeometry = errors.New("tablet: invalid geometry")
)

// GeometryError reports a dimension that failed Geometry.Validate.
type GeometryError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("tablet: invalid geometry: %s = %v: %s", e.Field, e.Value, e.Reason)
}

func (e *GeometryError) Unwrap() error {
	return ErrInvalidGeometry
}
