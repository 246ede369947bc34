package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serraria-backend/internal/models"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	secret := "segredo-de-teste-com-mais-de-32-caracteres"
	user := &models.User{
		Base:  models.Base{ID: "11111111-1111-1111-1111-111111111111"},
		Email: "dono@serraria.com",
		Role:  models.RoleAdmin,
	}

	tokenStr, err := GenerateToken(secret, user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(*JWTCustomClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{
		Base:  models.Base{ID: "11111111-1111-1111-1111-111111111111"},
		Email: "dono@serraria.com",
		Role:  models.RoleOperator,
	}

	tokenStr, err := GenerateToken("segredo-certo-com-mais-de-32-caracteres", user)
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("segredo-errado-com-mais-de-32-chars"), nil
	})
	assert.Error(t, err)
}
