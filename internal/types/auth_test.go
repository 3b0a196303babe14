package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{
		Username: "secretary01",
		Password: "correct-horse",
		FullName: "Paula Marie D. Bailon",
		Role:     "Secretary",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*RegisterRequest)
	}{
		{"missing username", func(r *RegisterRequest) { r.Username = "" }},
		{"short username", func(r *RegisterRequest) { r.Username = "ab" }},
		{"missing password", func(r *RegisterRequest) { r.Password = "" }},
		{"short password", func(r *RegisterRequest) { r.Password = "short" }},
		{"missing full name", func(r *RegisterRequest) { r.FullName = "" }},
		{"unknown role", func(r *RegisterRequest) { r.Role = "Administrator" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestRegisterRequest_AllowedRoles(t *testing.T) {
	for _, role := range []string{"Chairman", "Secretary", "Staff"} {
		req := RegisterRequest{
			Username: "user" + role,
			Password: "password123",
			FullName: "Test User",
			Role:     role,
		}
		assert.NoError(t, req.Validate(), role)
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := LoginRequest{Username: "chairman", Password: "secret123"}
	require.NoError(t, valid.Validate())

	assert.Error(t, (&LoginRequest{Password: "secret123"}).Validate())
	assert.Error(t, (&LoginRequest{Username: "chairman"}).Validate())
}
