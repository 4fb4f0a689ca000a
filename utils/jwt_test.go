package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseapi/config"
	"courseapi/models"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "testsecret", JWTExpireHours: 24}
}

func TestGenerateAndParseJWTToken(t *testing.T) {
	cfg := testConfig()
	user := &models.User{ID: 42, Username: "johndoe", Role: models.RoleInstructor}

	token, err := GenerateJWTToken(user, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWTToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "johndoe", claims.Username)
	assert.Equal(t, models.RoleInstructor, claims.Role)
}

func TestParseJWTTokenWrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Username: "johndoe", Role: models.RoleAdmin}

	token, err := GenerateJWTToken(user, testConfig())
	require.NoError(t, err)

	_, err = ParseJWTToken(token, &config.Config{JWTSecret: "othersecret", JWTExpireHours: 24})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWTTokenExpired(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret", JWTExpireHours: -1}
	user := &models.User{ID: 1, Username: "johndoe", Role: models.RoleAdmin}

	token, err := GenerateJWTToken(user, cfg)
	require.NoError(t, err)

	_, err = ParseJWTToken(token, cfg)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWTTokenMalformed(t *testing.T) {
	_, err := ParseJWTToken("not-a-token", testConfig())
	assert.ErrorIs(t, err, ErrInvalidToken)
}
