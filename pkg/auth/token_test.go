package auth

import (
	"testing"
	"time"

	"music-catalog-api/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestToken_IssueAndVerify_ShouldRoundTripUserID(t *testing.T) {
	tokens := NewTokenService("test-secret")

	token, err := tokens.Issue("603ac4abd9ad8067f54a2778")
	require.Nil(t, err)
	require.NotEmpty(t, token)

	userID, err := tokens.Verify(token)
	require.Nil(t, err)
	require.Equal(t, "603ac4abd9ad8067f54a2778", userID)
}

func TestToken_Verify_ShouldReturnExpiredTokenErrorForExpiredToken(t *testing.T) {
	tokens := NewTokenService("test-secret")

	claims := Claims{
		UserID: "603ac4abd9ad8067f54a2778",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.Nil(t, err)

	_, err = tokens.Verify(expired)
	require.Equal(t, apperror.ErrExpiredToken, err)
}

func TestToken_Verify_ShouldRejectTokenSignedWithDifferentSecret(t *testing.T) {
	issuer := NewTokenService("one-secret")
	verifier := NewTokenService("another-secret")

	token, err := issuer.Issue("603ac4abd9ad8067f54a2778")
	require.Nil(t, err)

	_, err = verifier.Verify(token)
	require.Equal(t, apperror.ErrInvalidToken, err)
}

func TestToken_Verify_ShouldRejectGarbageToken(t *testing.T) {
	tokens := NewTokenService("test-secret")

	_, err := tokens.Verify("not-a-token")
	require.Equal(t, apperror.ErrInvalidToken, err)
}

func TestToken_Verify_ShouldRejectTokenWithoutUserID(t *testing.T) {
	tokens := NewTokenService("test-secret")

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.Nil(t, err)

	_, err = tokens.Verify(token)
	require.Equal(t, apperror.ErrInvalidToken, err)
}

func TestToken_NewTokenService_ShouldFallBackToDefaultSecretWhenEmpty(t *testing.T) {
	issuer := NewTokenService("")
	verifier := NewTokenService(defaultSecret)

	token, err := issuer.Issue("603ac4abd9ad8067f54a2778")
	require.Nil(t, err)

	userID, err := verifier.Verify(token)
	require.Nil(t, err)
	require.Equal(t, "603ac4abd9ad8067f54a2778", userID)
}
