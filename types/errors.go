package types

import (
	"errors"
	"fmt"
)

// MissingField is returned when a required key is absent (or null) in a message.
// Nested keys use dotted paths, e.g. "factory.address".
type MissingField struct {
	Field string `json:"field"`
}

func (e MissingField) Error() string {
	return fmt.Sprintf("missing field `%s`", e.Field)
}

// TypeMismatch is returned when a key is present but does not decode as Expected.
type TypeMismatch struct {
	Field    string `json:"field"`
	Expected string `json:"expected"`
}

func (e TypeMismatch) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid message: expected %s", e.Expected)
	}
	return fmt.Sprintf("invalid type for field `%s`: expected %s", e.Field, e.Expected)
}

// InvalidAddress is returned when an address fails the host's address rule.
type InvalidAddress struct {
	Field  string `json:"field,omitempty"`
	Value  string `json:"value"`
	Reason string `json:"reason,omitempty"`
}

func (e InvalidAddress) Error() string {
	msg := fmt.Sprintf("invalid address %q", e.Value)
	if e.Field != "" {
		msg = fmt.Sprintf("invalid address %q for field `%s`", e.Value, e.Field)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// ValidationError captures every way an InstantiateMsg can be rejected.
// Exactly one of the fields should be set.
type ValidationError struct {
	MissingField   *MissingField   `json:"missing_field,omitempty"`
	TypeMismatch   *TypeMismatch   `json:"type_mismatch,omitempty"`
	InvalidAddress *InvalidAddress `json:"invalid_address,omitempty"`
}

var (
	_ error = ValidationError{}
	_ error = MissingField{}
	_ error = TypeMismatch{}
	_ error = InvalidAddress{}
)

func (v ValidationError) Error() string {
	switch {
	case v.MissingField != nil:
		return v.MissingField.Error()
	case v.TypeMismatch != nil:
		return v.TypeMismatch.Error()
	case v.InvalidAddress != nil:
		return v.InvalidAddress.Error()
	default:
		panic("unknown error variant")
	}
}

// Kind names the set variant: "missing_field", "type_mismatch" or "invalid_address".
func (v ValidationError) Kind() string {
	switch {
	case v.MissingField != nil:
		return "missing_field"
	case v.TypeMismatch != nil:
		return "type_mismatch"
	case v.InvalidAddress != nil:
		return "invalid_address"
	default:
		return "unknown"
	}
}

// ToValidationError converts any error wrapping one of the validation kinds
// into a ValidationError. Any other error (including nil) returns nil.
func ToValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}
	var (
		ve ValidationError
		mf MissingField
		tm TypeMismatch
		ia InvalidAddress
	)
	switch {
	case errors.As(err, &ve):
		return &ve
	case errors.As(err, &mf):
		return &ValidationError{MissingField: &mf}
	case errors.As(err, &tm):
		return &ValidationError{TypeMismatch: &tm}
	case errors.As(err, &ia):
		return &ValidationError{InvalidAddress: &ia}
	default:
		return nil
	}
}
