package postaddr

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the parsing entry points and the line accessors.
var (
	ErrEmptyAddress     = errors.New("empty address")
	ErrMalformedAddress = errors.New("malformed address")
	ErrUnknownCountry   = errors.New("unknown country code")
	ErrReservedLine     = errors.New("line is reserved by the country format")
	ErrLineIndex        = errors.New("line index out of range")
	ErrUnsupportedField = errors.New("field not used by the country format")
)

// FieldError reports a failed validation rule on a single address field.
type FieldError struct {
	Country string // short country code of the variant that rejected the field
	Field   string
	Value   string
	Message string
	Err     error // underlying cause, e.g. a *ResolutionError
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Field, e.Message)
	if e.Value != "" {
		msg = fmt.Sprintf("%s: %s (%q)", e.Field, e.Message, e.Value)
	}
	if e.Country != "" {
		msg = e.Country + " " + msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// fieldErr builds a *FieldError for the given variant.
func fieldErr(v Variant, field Field, value, message string) error {
	return &FieldError{Country: v.Country(), Field: field.String(), Value: value, Message: message}
}

// ResolutionError is returned when the matcher cannot map free text to one
// of its candidates with enough confidence.
type ResolutionError struct {
	Text   string
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %q: %s", e.Text, e.Reason)
}

// InvalidAddressError is returned by Check when the text does not describe a
// valid address. Text holds the offending input.
type InvalidAddressError struct {
	Text string
	Err  error
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid address %q: %v", e.Text, e.Err)
}

func (e *InvalidAddressError) Unwrap() error {
	return e.Err
}

// Error kinds reported by ErrorKind.
const (
	KindEmpty      = "empty"
	KindMalformed  = "malformed"
	KindField      = "field"
	KindResolution = "resolution"
	KindUnknown    = "unknown"
)

// ErrorKind classifies an error returned by this package.
// Resolution failures are reported as such even when wrapped in a FieldError.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	var re *ResolutionError
	var fe *FieldError
	switch {
	case errors.Is(err, ErrEmptyAddress):
		return KindEmpty
	case errors.Is(err, ErrMalformedAddress):
		return KindMalformed
	case errors.As(err, &re):
		return KindResolution
	case errors.As(err, &fe):
		return KindField
	}
	return KindUnknown
}
