// Package apperror carries the error kinds the service layer is allowed to
// surface. Handlers never inspect kinds themselves; transport.WriteAppError is
// the single place that turns a kind into a status code.
package apperror

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindInvalid
	KindNotFound
)

type Error struct {
	Kind    Kind
	Message string
	Details map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Invalid reports malformed, missing or out-of-domain input. Details maps
// field names to the rule they broke.
func Invalid(message string, details map[string]string) *Error {
	return &Error{Kind: KindInvalid, Message: message, Details: details}
}

// NotFound reports an identifier that resolves to no document.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal wraps an unexpected persistence or infrastructure failure. The
// underlying message is kept and passed through to the response.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

// KindOf classifies any error; errors outside the taxonomy count as internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
