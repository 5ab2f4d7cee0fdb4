package util

import (
	"lingua_edu_backend/internal/model"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jwtTestSecret = "jwt-test-secret-jwt-test-secret-"

func testUser() *model.User {
	user := &model.User{Email: "editor@test.example", Role: model.Editor}
	user.ID = 42
	return user
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(testUser(), jwtTestSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, jwtTestSecret)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, model.Editor, claims.Role)
	assert.Equal(t, "editor@test.example", claims.Email)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), jwtTestSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret-other-secret-other-")
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT(testUser(), jwtTestSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, jwtTestSecret)
	assert.Error(t, err)
}

func TestJWTForeignIssuerRejected(t *testing.T) {
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 42,
		Role:   model.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := foreign.SignedString([]byte(jwtTestSecret))
	require.NoError(t, err)

	_, err = ParseJWT(token, jwtTestSecret)
	assert.Error(t, err)
}

func TestJWTUnexpectedAlgorithmRejected(t *testing.T) {
	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := hs512.SignedString([]byte(jwtTestSecret))
	require.NoError(t, err)

	_, err = ParseJWT(token, jwtTestSecret)
	assert.Error(t, err)
}
