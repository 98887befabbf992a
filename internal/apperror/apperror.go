package apperror

import "errors"

// Kind describes a stable error category that can be mapped to HTTP status codes.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindUndeliverable Kind = "undeliverable"
	KindMalformedSpec Kind = "malformed_spec"
	KindInvalidMethod Kind = "invalid_method"
	KindComputation   Kind = "computation"
	KindUpstream      Kind = "upstream"
)

// Error is a typed error with a stable Kind and a human-readable message.
// Msg should be safe to return to clients for Validation/Undeliverable/MalformedSpec.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func New(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func Validation(msg string, err error) error    { return New(KindValidation, msg, err) }
func Undeliverable(msg string, err error) error { return New(KindUndeliverable, msg, err) }
func MalformedSpec(msg string, err error) error { return New(KindMalformedSpec, msg, err) }
func InvalidMethod(msg string, err error) error { return New(KindInvalidMethod, msg, err) }
func Computation(msg string, err error) error   { return New(KindComputation, msg, err) }
func Upstream(msg string, err error) error      { return New(KindUpstream, msg, err) }

func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
