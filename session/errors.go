package session

import (
	"errors"

	"github.com/lifefellowship/fellowship-client/model"
)

// ErrProfileIncomplete reports that a phone session was established but no
// profile document exists for the user yet. The caller should route to the
// profile setup flow instead of showing an error.
var ErrProfileIncomplete = errors.New("profile incomplete")

// UserMessage maps an operation error to user-facing text, switching on the
// structured error kinds surfaced by the identity adapter. ErrProfileIncomplete
// maps to an empty string: it is a navigation signal, not a failure.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrProfileIncomplete):
		return ""
	case errors.Is(err, model.ErrInvalidCode):
		return "The code you entered is incorrect. Please try again."
	case errors.Is(err, model.ErrInvalidCredentials):
		return "Incorrect email or password. Please try again."
	case errors.Is(err, model.ErrConflict):
		return "An account with this email already exists."
	case errors.Is(err, model.ErrRateLimited):
		return "Too many attempts. Please wait a moment and try again."
	default:
		return "An unexpected error occurred. Please try again."
	}
}
