package authutils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"smartjob-backend/config"
	"smartjob-backend/models"
)

func TestAuthUtils(t *testing.T) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60

	t.Run(`GetToken claims check`, func(t *testing.T) {
		tokenString, err := GetToken("user-1", "Test", models.AdminRole)
		require.Nil(t, err)

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.Nil(t, err)
		require.True(t, token.Valid)
		require.Equal(t, "user-1", claims["sub"])
		require.Equal(t, "Admin", claims["role"])
		require.Equal(t, true, claims["admin"])
	})

	t.Run(`password hash check`, func(t *testing.T) {
		hash, err := HashPassword("TestPass@123")
		require.Nil(t, err)
		require.NotEqual(t, "TestPass@123", hash)
		require.True(t, CheckPassword(hash, "TestPass@123"))
		require.False(t, CheckPassword(hash, "testpass@123"))
	})
}
