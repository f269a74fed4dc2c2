package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signup struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Phone    string  `json:"phone" validate:"omitempty,phone"`
	Amount   float64 `json:"amount" validate:"omitempty,gt=0"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name        string
		input       signup
		expectedErr string
	}{
		{
			name:  "Valid",
			input: signup{Email: "member@example.com", Password: "secret1", Phone: "+1 (555) 010-0100"},
		},
		{
			name:        "Missing email",
			input:       signup{Password: "secret1"},
			expectedErr: "email is required",
		},
		{
			name:        "Bad email",
			input:       signup{Email: "nope", Password: "secret1"},
			expectedErr: "email must be a valid email address",
		},
		{
			name:        "Short password",
			input:       signup{Email: "member@example.com", Password: "abc"},
			expectedErr: "password must be at least 6",
		},
		{
			name:        "Bad phone",
			input:       signup{Email: "member@example.com", Password: "secret1", Phone: "call me"},
			expectedErr: "phone must be a valid phone number",
		},
		{
			name:        "Negative amount",
			input:       signup{Email: "member@example.com", Password: "secret1", Amount: -5},
			expectedErr: "amount must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.expectedErr)
		})
	}
}

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("5550100"))
	assert.True(t, IsPhone("+44 20 7946 0958"))
	assert.False(t, IsPhone("12345"))
	assert.False(t, IsPhone("555-CALL-NOW"))
}
