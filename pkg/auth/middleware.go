package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"music-catalog-api/pkg/apperror"
	"music-catalog-api/pkg/models"
	"music-catalog-api/pkg/response"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type contextKey string

const userContextKey contextKey = "authenticatedUser"

// UserFinder resolves a verified token subject to a stored user, with the
// password field excluded.
type UserFinder interface {
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Guard gates requests on bearer-token identity.
type Guard struct {
	Tokens *TokenService
	Users  UserFinder
}

// Require rejects the request unless a valid token resolves to an existing
// user. The resolved user is attached to the request context.
func (g *Guard) Require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			response.Fail(w, http.StatusUnauthorized, "Access token required")
			return
		}

		user, err := g.resolve(r.Context(), token)
		if err != nil {
			if apperror.IsNotFound(err) {
				response.Fail(w, http.StatusUnauthorized, "Invalid token - user not found")
				return
			}
			if errors.Is(err, apperror.ErrInvalidToken) || errors.Is(err, apperror.ErrExpiredToken) {
				logrus.WithError(err).Error("Authentication failed")
				response.Fail(w, http.StatusForbidden, "Invalid or expired token")
				return
			}
			response.Error(w, err)
			return
		}

		next(w, r.WithContext(ContextWithUser(r.Context(), user)))
	}
}

// Optional attaches an identity when the token resolves, and swallows every
// failure. Handlers must treat the identity as possibly absent.
func (g *Guard) Optional(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token, err := bearerToken(r); err == nil {
			if user, err := g.resolve(r.Context(), token); err == nil {
				r = r.WithContext(ContextWithUser(r.Context(), user))
			}
		}
		next(w, r)
	}
}

func (g *Guard) resolve(ctx context.Context, token string) (*models.User, error) {
	userID, err := g.Tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	return g.Users.GetUserByID(ctx, id)
}

func bearerToken(r *http.Request) (string, error) {
	tokenHeader := r.Header.Get("Authorization")
	if tokenHeader == "" {
		return "", errors.New("no authorization header found")
	}
	parts := strings.Split(tokenHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errors.New("authorization header must be in format 'Bearer <token>'")
	}
	return parts[1], nil
}

// ContextWithUser returns a copy of ctx carrying user as the authenticated
// identity.
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the identity attached by the guard, if any.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok && user != nil
}
