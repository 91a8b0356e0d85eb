package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a failure by where it originated and how the dashboard reacts to it.
type Kind string

const (
	// KindNetwork covers transport failures talking to the API (dial, timeout, non-200).
	KindNetwork Kind = "network"
	// KindBusiness is an error message reported by the API itself.
	KindBusiness Kind = "business"
	// KindAuth is an authentication-class message; it forces logout instead of inline display.
	KindAuth Kind = "auth"
	// KindValidation is raised client-side before any request is sent.
	KindValidation Kind = "validation"
	// KindConflict rejects a mutation whose twin on the same record is still in flight.
	KindConflict Kind = "conflict"
	// KindNotFound is used for lookups of local state (open workflows, unknown screens).
	KindNotFound Kind = "not_found"
)

// Error is the typed error surfaced by queries and mutations.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, failure.Auth) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	Network    = &Error{Kind: KindNetwork}
	Business   = &Error{Kind: KindBusiness}
	Auth       = &Error{Kind: KindAuth}
	Validation = &Error{Kind: KindValidation}
	Conflict   = &Error{Kind: KindConflict}
	NotFound   = &Error{Kind: KindNotFound}
)

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Invalid builds a validation failure with a formatted message.
func Invalid(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// As extracts the *Error from err. Unknown errors are reported as network failures
// because they can only come from the transport layer.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}
	return &Error{Kind: KindNetwork, Message: err.Error(), Err: err}
}

// KindOf returns the kind of err, or "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	return As(err).Kind
}

// UserMessage picks the text shown to the admin: the server-provided message for
// business and validation failures, fallback otherwise.
func UserMessage(err error, fallback string) string {
	fe := As(err)
	if fe == nil {
		return ""
	}
	switch fe.Kind {
	case KindBusiness, KindValidation, KindConflict, KindNotFound:
		if fe.Message != "" {
			return fe.Message
		}
	}
	return fallback
}
