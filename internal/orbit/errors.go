package orbit

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors for orbit parameters read from configuration.
var (
	// ErrSemiMajorAxis indicates a negative or non-finite semi-major axis.
	ErrSemiMajorAxis = errors.New("orbit: semi-major axis must be finite and >= 0")

	// ErrEccentricity indicates an eccentricity outside [0, 1).
	ErrEccentricity = errors.New("orbit: eccentricity must be in [0, 1)")

	// ErrBand indicates a radial band with min > max or a negative edge.
	ErrBand = errors.New("orbit: invalid radial band")
)

// Validate reports whether o can be projected.
func (o Orbit) Validate() error {
	if o.SemiMajor < 0 || math.IsNaN(o.SemiMajor) || math.IsInf(o.SemiMajor, 0) {
		return fmt.Errorf("%w: got %g", ErrSemiMajorAxis, o.SemiMajor)
	}
	if !(o.Eccentricity >= 0 && o.Eccentricity < 1) {
		return fmt.Errorf("%w: got %g", ErrEccentricity, o.Eccentricity)
	}
	return nil
}

// Validate reports whether b describes a usable annulus.
func (b Band) Validate() error {
	if b.Min < 0 || b.Max < b.Min || math.IsNaN(b.Min) || math.IsNaN(b.Max) {
		return fmt.Errorf("%w: [%g, %g]", ErrBand, b.Min, b.Max)
	}
	return nil
}
