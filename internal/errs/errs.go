package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a solver failure.
type Kind string

const (
	KindInvalidInput  Kind = "invalid_input"
	KindUnknownLookup Kind = "unknown_lookup"
	KindDomain        Kind = "domain"
)

// Error carries the failure kind plus the offending field and value, so the
// request layer can report a structured failure instead of a bare message.
type Error struct {
	Kind  Kind
	Field string
	Value any
	Msg   string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s (%s=%v)", e.Kind, e.Msg, e.Field, e.Value)
}

func Invalid(field string, value any, msg string) *Error {
	return &Error{Kind: KindInvalidInput, Field: field, Value: value, Msg: msg}
}

func Unknown(field string, value any) *Error {
	return &Error{Kind: KindUnknownLookup, Field: field, Value: value, Msg: "not found in property library"}
}

func Domain(field string, value any, msg string) *Error {
	return &Error{Kind: KindDomain, Field: field, Value: value, Msg: msg}
}

// KindOf returns the kind of err, or "" when err is not a solver error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
