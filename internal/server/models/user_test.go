package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_ProfileOmitsSecrets(t *testing.T) {
	u := &User{
		ID:           "id-1",
		FirstName:    "A",
		SurName:      "B",
		DateOfBirth:  "01-Jan-2000",
		Gender:       "female",
		EmailID:      "a@b.com",
		PasswordHash: "$2a$10$hash",
	}

	p := u.Profile()
	assert.Equal(t, PublicProfile{FirstName: "A", SurName: "B", EmailID: "a@b.com", DateOfBirth: "01-Jan-2000", Gender: "female"}, p)

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hash")
	assert.NotContains(t, string(b), "id-1")

	var fields map[string]any
	require.NoError(t, json.Unmarshal(b, &fields))
	assert.Len(t, fields, 5)
}
