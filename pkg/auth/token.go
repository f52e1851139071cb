package auth

import (
	"errors"
	"time"

	"music-catalog-api/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// defaultSecret mirrors the historical fallback. Deploys should always set
// JWT_SECRET; the fallback exists for behavioral parity and is logged loudly.
const defaultSecret = "your-secret-key"

const tokenLifetime = 7 * 24 * time.Hour

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies stateless bearer tokens. Validity is
// determined entirely by signature and expiry; no revocation list exists.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	if secret == "" {
		logrus.Warn("JWT secret not configured, falling back to built-in default")
		secret = defaultSecret
	}
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token embedding the user id, issued now, expiring in 7 days.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify returns the embedded user id. No database lookup happens here; the
// guard checks that the subject still exists.
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperror.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperror.ErrExpiredToken
		}
		return "", apperror.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", apperror.ErrInvalidToken
	}
	return claims.UserID, nil
}
