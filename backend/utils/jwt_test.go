package utils

import (
	"testing"

	"goalpad/backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}

	token, err := GenerateJWTToken("alice", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := ParseToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateJWTToken("alice", &config.Config{JWTSecret: "secret-a"})
	require.NoError(t, err)

	_, err = ParseToken(token, &config.Config{JWTSecret: "secret-b"})
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", &config.Config{JWTSecret: "testsecret"})
	assert.Error(t, err)
}
