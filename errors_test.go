package postaddr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKind(t *testing.T) {
	res := &ResolutionError{Text: "Atlantis", Reason: "no close match"}
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"empty", ErrEmptyAddress, KindEmpty},
		{"malformed", fmt.Errorf("%w: too short", ErrMalformedAddress), KindMalformed},
		{"wrapped malformed", &InvalidAddressError{Text: "x", Err: ErrMalformedAddress}, KindMalformed},
		{"field", &FieldError{Field: "postal code", Message: "required"}, KindField},
		{"resolution", res, KindResolution},
		{"resolution in field", &InvalidAddressError{Err: &FieldError{Field: "state", Err: res}}, KindResolution},
		{"other", errors.New("boom"), KindUnknown},
	}
	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.want {
			t.Errorf("%s: ErrorKind = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&FieldError{Field: "city", Message: "required"}, "city: required"},
		{&FieldError{Country: "US", Field: "postal code", Value: "99999", Message: "not a ZIP code of NY"},
			`US postal code: not a ZIP code of NY ("99999")`},
		{&FieldError{Country: "IN", Field: "state", Value: "Xy", Message: "unknown state",
			Err: &ResolutionError{Text: "Xy", Reason: "no close match"}},
			`IN state: unknown state ("Xy"): cannot resolve "Xy": no close match`},
		{&InvalidAddressError{Text: "US2", Err: ErrMalformedAddress}, `invalid address "US2": malformed address`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestFieldErrorUnwrap(t *testing.T) {
	res := &ResolutionError{Text: "Xy", Reason: "no close match"}
	err := error(&InvalidAddressError{Text: "t", Err: &FieldError{Field: "state", Err: res}})
	var got *ResolutionError
	if !errors.As(err, &got) || got != res {
		t.Errorf("errors.As did not reach the resolution error: %v", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "state" {
		t.Errorf("errors.As did not reach the field error: %v", err)
	}
}
