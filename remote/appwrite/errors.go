package appwrite

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lifefellowship/fellowship-client/model"
)

// Error is a structured remote service error. Kind is one of the model error
// sentinels when the remote error type is recognized; Type and Message carry
// the raw envelope for logging.
type Error struct {
	Kind    error
	Type    string
	Message string
	Status  int
}

func (e *Error) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("appwrite: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("appwrite: %s: %s", e.Type, e.Message)
}

// Unwrap exposes the classified kind so errors.Is works against the model
// sentinels.
func (e *Error) Unwrap() error {
	return e.Kind
}

type errorEnvelope struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}

func decodeError(resp *http.Response) *Error {
	var envelope errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return &Error{
			Kind:    classify("", resp.StatusCode),
			Message: resp.Status,
			Status:  resp.StatusCode,
		}
	}

	return &Error{
		Kind:    classify(envelope.Type, resp.StatusCode),
		Type:    envelope.Type,
		Message: envelope.Message,
		Status:  resp.StatusCode,
	}
}

// classify maps the service's error type codes to model error kinds. Unknown
// types fall back to status-based classification; anything else is left
// unclassified.
func classify(errType string, status int) error {
	switch errType {
	case "user_invalid_credentials":
		return model.ErrInvalidCredentials
	case "user_invalid_token", "user_token_expired":
		return model.ErrInvalidCode
	case "user_not_found", "user_session_not_found", "document_not_found":
		return model.ErrNotFound
	case "user_already_exists", "user_email_already_exists", "user_phone_already_exists", "document_already_exists":
		return model.ErrConflict
	case "general_rate_limit_exceeded":
		return model.ErrRateLimited
	}

	switch status {
	case http.StatusNotFound:
		return model.ErrNotFound
	case http.StatusConflict:
		return model.ErrConflict
	case http.StatusTooManyRequests:
		return model.ErrRateLimited
	}

	return nil
}
