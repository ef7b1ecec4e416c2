package auth

import (
	"testing"

	"github.com/foodconnect/api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateTokenPair(t *testing.T) {
	service := NewJWTService("test-secret", "test-refresh-secret")

	pair, err := service.GenerateTokenPair(1, "jamie@example.com", domain.RoleReceiver)
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.Token)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.Token, pair.RefreshToken)

	claims, err := service.ValidateToken(pair.Token)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "jamie@example.com", claims.Email)
	assert.Equal(t, domain.RoleReceiver, claims.Role)
}

func TestValidateToken(t *testing.T) {
	service := NewJWTService("test-secret", "test-refresh-secret")
	pair, err := service.GenerateTokenPair(1, "jamie@example.com", domain.RoleDonor)
	assert.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		expectErr bool
	}{
		{name: "Valid access token", token: pair.Token, expectErr: false},
		{name: "Refresh token fails access validation", token: pair.RefreshToken, expectErr: true},
		{name: "Garbage token", token: "not-a-token", expectErr: true},
		{name: "Tampered token", token: pair.Token + "x", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.RoleDonor, claims.Role)
			}
		})
	}
}

func TestValidateRefreshToken(t *testing.T) {
	service := NewJWTService("test-secret", "test-refresh-secret")
	other := NewJWTService("other-secret", "other-refresh-secret")

	pair, err := service.GenerateTokenPair(1, "jamie@example.com", domain.RoleReceiver)
	assert.NoError(t, err)

	claims, err := service.ValidateRefreshToken(pair.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)

	_, err = service.ValidateRefreshToken(pair.Token)
	assert.Error(t, err)

	_, err = other.ValidateRefreshToken(pair.RefreshToken)
	assert.Error(t, err)
}
