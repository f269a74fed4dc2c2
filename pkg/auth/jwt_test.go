package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService("test-secret")

	tests := []struct {
		name           string
		userID         uuid.UUID
		expirationTime time.Time
		expectError    bool
	}{
		{
			name:           "Valid Token",
			userID:         uuid.New(),
			expirationTime: time.Now().Add(time.Hour),
			expectError:    false,
		},
		{
			name:           "Expired Token",
			userID:         uuid.New(),
			expirationTime: time.Now().Add(-time.Hour),
			expectError:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.userID, tt.expirationTime)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	userID := uuid.New()

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectError bool
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(userID, time.Now().Add(time.Hour))
				return token
			},
			expectError: false,
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(userID, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Signed With Another Secret",
			setup: func() string {
				token, _ := NewJWTService("other-secret").GenerateJWT(userID, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Wrong Issuer",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					UserID: userID,
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    "someone-else",
					},
				})
				tokenString, _ := token.SignedString([]byte("test-secret"))
				return tokenString
			},
			expectError: true,
		},
		{
			name: "Missing User",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    issuer,
				})
				tokenString, _ := token.SignedString([]byte("test-secret"))
				return tokenString
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenString string
			if tt.setup != nil {
				tokenString = tt.setup()
			} else {
				tokenString = tt.tokenString
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, userID, claims.UserID)
			}
		})
	}
}
