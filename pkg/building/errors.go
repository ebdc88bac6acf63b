package building

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownZone is returned when a surface names a zone the model lacks.
	ErrUnknownZone = errors.New("unknown zone")
	// ErrUnknownSurface is returned when a window names a host surface the model lacks.
	ErrUnknownSurface = errors.New("unknown host surface")
	// ErrMissingRule means the model has no GlobalGeometryRules object.
	ErrMissingRule = errors.New("no GlobalGeometryRules object")
	// ErrAmbiguousRule means the model has more than one GlobalGeometryRules object.
	ErrAmbiguousRule = errors.New("more than one GlobalGeometryRules object")
)

// ConfigurationError reports that the coordinate system cannot be determined.
type ConfigurationError struct {
	Reason error
	Count  int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("cannot determine coordinate system: %v (found %d)", e.Reason, e.Count)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Reason
}
