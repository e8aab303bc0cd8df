package imagepkg

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingDimensions means the catalog did not supply a physical size.
	ErrMissingDimensions = errors.New("physical case dimensions missing")
	// ErrInvalidDimensions means a physical or derived size is out of range.
	ErrInvalidDimensions = errors.New("physical case dimensions out of range")
	// ErrNoSlot marks an image beyond the template's image count.
	ErrNoSlot = errors.New("template has no slot for image")
)

// DimensionError names the bound a size violated.
type DimensionError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
	Unit  string
}

func (e *DimensionError) Error() string {
	bound := "maximum"
	limit := e.Max
	if e.Value < e.Min {
		bound = "minimum"
		limit = e.Min
	}
	return fmt.Sprintf("%s %.2f%s violates %s %g (allowed %g-%g%s)",
		e.Field, e.Value, e.Unit, bound, limit, e.Min, e.Max, e.Unit)
}

func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimensions
}
