package graphql

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
)

const (
	errPrefix    = "graphql: "
	non200Prefix = "graphql: server returned a non-200 status code: "
)

// IsAuthMessage reports whether a backend message means the session is no longer valid.
func IsAuthMessage(msg string) bool {
	m := strings.ToLower(msg)
	return strings.Contains(m, "unauthorized") || strings.Contains(m, "authentication")
}

// Classify turns a client error into a *failure.Error: transport problems become network
// failures, messages reported by the API become business failures, and authentication-class
// messages become auth failures.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var fe *failure.Error
	if errors.As(err, &fe) {
		return fe
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return failure.Wrap(failure.KindNetwork, "request timed out", err)
	}
	if errors.Is(err, context.Canceled) {
		return failure.Wrap(failure.KindNetwork, "request cancelled", err)
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return failure.Wrap(failure.KindNetwork, "API unreachable", err)
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return failure.Wrap(failure.KindNetwork, "API unreachable", err)
	}

	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, non200Prefix):
		code := strings.TrimPrefix(msg, non200Prefix)
		if code == "401" || code == "403" {
			return failure.Wrap(failure.KindAuth, "Unauthorized", err)
		}
		return failure.Wrap(failure.KindNetwork, "API returned status "+code, err)
	case strings.HasPrefix(msg, errPrefix):
		return messageError(strings.TrimPrefix(msg, errPrefix), err)
	}
	return failure.Wrap(failure.KindNetwork, "API request failed", err)
}

// messageError classifies a message the API reported in its errors array.
func messageError(msg string, cause error) *failure.Error {
	if IsAuthMessage(msg) {
		return failure.Wrap(failure.KindAuth, msg, cause)
	}
	return failure.Wrap(failure.KindBusiness, msg, cause)
}
