package collision

import (
	"errors"
	"fmt"
)

// Error sentinels. Every error returned by this package (and by the loader)
// matches exactly one of them through errors.Is.
var (
	// ErrUnsupportedFormat is returned when an archive path does not end in .tgz.
	ErrUnsupportedFormat = errors.New("unsupported archive format")

	// ErrMissingField is returned when a constructor or accessor is asked for a
	// field that is absent from the backing mapping or unknown to the schema.
	ErrMissingField = errors.New("missing field")

	// ErrUnsupportedInput is returned by Parse/ParseVehicles for input shapes
	// they do not accept.
	ErrUnsupportedInput = errors.New("unsupported input shape")

	// ErrTimestamp is returned when date/time do not match TimestampLayout.
	ErrTimestamp = errors.New("timestamp parse failure")
)

// MissingFieldError names the field that was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

// Is makes errors.Is(err, ErrMissingField) true.
func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

func missingField(name string) error { return &MissingFieldError{Field: name} }

// TimestampError carries the raw date and time values that failed to parse.
type TimestampError struct {
	Date any
	Time any
	Err  error
}

func (e *TimestampError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("timestamp: date=%v time=%v", e.Date, e.Time)
	}
	return fmt.Sprintf("timestamp: date=%v time=%v: %v", e.Date, e.Time, e.Err)
}

// Is makes errors.Is(err, ErrTimestamp) true.
func (e *TimestampError) Is(target error) bool { return target == ErrTimestamp }

// Unwrap exposes the underlying time.Parse error, if any.
func (e *TimestampError) Unwrap() error { return e.Err }
