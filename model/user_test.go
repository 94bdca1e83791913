package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAccount_EqualByIDOnly(t *testing.T) {
	a := UserAccount{ID: "u1", Email: "a@b.com", FirstName: "A"}
	b := UserAccount{ID: "u1", Email: "other@b.com", FirstName: "Z"}
	c := UserAccount{ID: "u2", Email: "a@b.com", FirstName: "A"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestUserAccount_JSONFieldNames(t *testing.T) {
	raw, err := json.Marshal(UserAccount{
		ID:        "u1",
		Email:     "a@b.com",
		FirstName: "A",
		LastName:  "B",
		Role:      "user",
		CreatedAt: "2024-01-01T00:00:00Z",
	})
	require.NoError(t, err)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(raw, &fields))

	// Field names match the remote document schema; note userID, not id.
	assert.Equal(t, map[string]string{
		"userID":    "u1",
		"email":     "a@b.com",
		"firstName": "A",
		"lastName":  "B",
		"role":      "user",
		"createdAt": "2024-01-01T00:00:00Z",
	}, fields)
}

func TestUserAccount_FullName(t *testing.T) {
	u := UserAccount{FirstName: "A", LastName: "B"}
	assert.Equal(t, "A B", u.FullName())
}
