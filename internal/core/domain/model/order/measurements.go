package order

import (
	"fmt"
	"maps"

	"tailorshop/internal/pkg/errs"
)

// Measurements maps a named dimension (chest, waist, sleeve) to its value.
// Values are whatever unit the shop works in; the domain only requires them
// to be positive.
type Measurements map[string]float64

// Validate checks that at least one dimension is present, that every
// dimension has a name, and that every value is positive.
func (m Measurements) Validate() error {
	if len(m) == 0 {
		return errs.NewValueIsRequiredError("measurements")
	}

	for dimension, value := range m {
		if dimension == "" {
			return errs.NewValueIsInvalidErrorWithCause(
				"measurements",
				fmt.Errorf("dimension name must not be empty"),
			)
		}
		if value <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"measurements",
				fmt.Errorf("%s must be greater than 0, got %v", dimension, value),
			)
		}
	}

	return nil
}

// Clone returns an independent copy so callers cannot mutate the aggregate's
// measurements through a shared map.
func (m Measurements) Clone() Measurements {
	if m == nil {
		return nil
	}
	return maps.Clone(m)
}
