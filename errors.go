package csscolor

import (
	"errors"
	"strconv"
)

// Sentinel errors for csscolor package.
var (
	// ErrRange is returned when a numeric value is outside its domain:
	// a byte outside [0, 255] or a fraction outside [0.0, 1.0].
	ErrRange = errors.New("csscolor: value out of range")

	// ErrValue is returned when a string is not a recognized color name
	// or a well-formed hex color.
	ErrValue = errors.New("csscolor: invalid color value")

	// ErrArgumentCount is returned when Average is called without colors.
	ErrArgumentCount = errors.New("csscolor: at least one color is required")
)

// RangeError describes a numeric argument outside its allowed interval.
// It matches ErrRange with errors.Is.
type RangeError struct {
	Field    string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return "csscolor: " + e.Field + " " + formatFloat(e.Value) +
		" out of range [" + formatFloat(e.Min) + ", " + formatFloat(e.Max) + "]"
}

// Unwrap returns ErrRange.
func (e *RangeError) Unwrap() error { return ErrRange }

// ValueError describes a string that could not be parsed as a color.
// It matches ErrValue with errors.Is.
type ValueError struct {
	Input  string
	Reason string
}

func (e *ValueError) Error() string {
	return "csscolor: " + e.Reason + ": " + strconv.Quote(e.Input)
}

// Unwrap returns ErrValue.
func (e *ValueError) Unwrap() error { return ErrValue }

func byteRangeError(field string, v int) error {
	return &RangeError{Field: field, Value: float64(v), Min: 0, Max: 255}
}

func unitRangeError(field string, v float64) error {
	return &RangeError{Field: field, Value: v, Min: 0, Max: 1}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
