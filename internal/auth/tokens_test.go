package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_IssueAndValidate(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Minute)

	token, err := issuer.Issue("user@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	email, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}

func TestTokenIssuer_Validate_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue("user@example.com")
	require.NoError(t, err)

	_, err = issuer.Validate(token)

	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenIssuer_Validate_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Minute)
	other := NewTokenIssuer("other-secret", time.Minute)

	token, err := issuer.Issue("user@example.com")
	require.NoError(t, err)

	_, err = other.Validate(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Validate_Malformed(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Minute)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.Validate(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestGenerateSecretKey(t *testing.T) {
	first, err := GenerateSecretKey()
	require.NoError(t, err)
	assert.Len(t, first, 64) // 32 bytes hex encoded

	second, err := GenerateSecretKey()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
