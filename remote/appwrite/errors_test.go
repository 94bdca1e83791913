package appwrite

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lifefellowship/fellowship-client/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		errType string
		status  int
		want    error
	}{
		{name: "invalid credentials", errType: "user_invalid_credentials", status: 401, want: model.ErrInvalidCredentials},
		{name: "invalid otp token", errType: "user_invalid_token", status: 401, want: model.ErrInvalidCode},
		{name: "expired otp token", errType: "user_token_expired", status: 401, want: model.ErrInvalidCode},
		{name: "document missing", errType: "document_not_found", status: 404, want: model.ErrNotFound},
		{name: "session missing", errType: "user_session_not_found", status: 404, want: model.ErrNotFound},
		{name: "duplicate email", errType: "user_email_already_exists", status: 409, want: model.ErrConflict},
		{name: "rate limited", errType: "general_rate_limit_exceeded", status: 429, want: model.ErrRateLimited},
		{name: "unknown type falls back to status", errType: "general_unknown", status: http.StatusNotFound, want: model.ErrNotFound},
		{name: "unclassified", errType: "general_unknown", status: 500, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.errType, tt.status))
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	err := &Error{Kind: model.ErrNotFound, Type: "document_not_found", Message: "missing", Status: 404}
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Contains(t, err.Error(), "document_not_found")
}
