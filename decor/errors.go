package decor

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidGeometry is matched (with errors.Is) by *InvalidGeometryError.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrOutOfRange is matched (with errors.Is) by *OutOfRangeParameterError.
	ErrOutOfRange = errors.New("parameter out of range")
)

// InvalidGeometryError is returned when a parameter would make
// the computed geometry undefined, such as a null curve divisor.
type InvalidGeometryError struct {
	Op    string // the decorator which failed
	Param string
	Value float64
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("decor: %s: invalid %s %g", e.Op, e.Param, e.Value)
}

func (e *InvalidGeometryError) Is(target error) bool { return target == ErrInvalidGeometry }

// OutOfRangeParameterError is returned when a parameter lies outside
// of its domain [Min, Max] (or (Min, Max) if Exclusive is true).
type OutOfRangeParameterError struct {
	Op        string // the decorator which failed
	Param     string
	Value     float64
	Min, Max  float64
	Exclusive bool
}

func (e *OutOfRangeParameterError) Error() string {
	lo, hi := "[", "]"
	if e.Exclusive {
		lo, hi = "(", ")"
	}
	return fmt.Sprintf("decor: %s: %s %g not in %s%g, %g%s", e.Op, e.Param, e.Value, lo, e.Min, e.Max, hi)
}

func (e *OutOfRangeParameterError) Is(target error) bool { return target == ErrOutOfRange }

// checkRange returns an error if v is not in [min, max]. NaN is always rejected.
func checkRange(op, param string, v, min, max float64) error {
	if math.IsNaN(v) || v < min || v > max {
		return &OutOfRangeParameterError{Op: op, Param: param, Value: v, Min: min, Max: max}
	}
	return nil
}

// checkOpenRange returns an error if v is not in (min, max).
func checkOpenRange(op, param string, v, min, max float64) error {
	if math.IsNaN(v) || v <= min || v >= max {
		return &OutOfRangeParameterError{Op: op, Param: param, Value: v, Min: min, Max: max, Exclusive: true}
	}
	return nil
}

func checkUnit(op, param string, v float64) error {
	return checkRange(op, param, v, 0, 1)
}

func checkNonNegative(op, param string, v float64) error {
	return checkRange(op, param, v, 0, math.Inf(1))
}
