package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"music-catalog-api/pkg/apperror"
	"music-catalog-api/pkg/auth"
	"music-catalog-api/pkg/dao"
	"music-catalog-api/pkg/models"
	"music-catalog-api/pkg/response"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func registerUser(handler dao.DbHandler, tokens *auth.TokenService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer closeRequestBody(r)

		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithError(err).Error("Error decoding request body")
			response.Fail(w, http.StatusBadRequest, "Error decoding request body")
			return
		}

		var missing []string
		if strings.TrimSpace(req.Username) == "" {
			missing = append(missing, "Username is required")
		}
		if strings.TrimSpace(req.Email) == "" {
			missing = append(missing, "Email is required")
		}
		if req.Password == "" {
			missing = append(missing, "Password is required")
		}
		if len(missing) > 0 {
			response.Error(w, &apperror.ValidationError{Fields: missing})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		username := strings.TrimSpace(req.Username)

		existing, err := handler.FindUserByEmailOrUsername(ctx, email, username)
		if err != nil {
			response.Error(w, err)
			return
		}
		if existing != nil {
			message := "Username already taken"
			if existing.Email == email {
				message = "Email already registered"
			}
			response.Fail(w, http.StatusBadRequest, message)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			response.Error(w, err)
			return
		}

		now := time.Now().UTC()
		user := models.User{
			ID:        primitive.NewObjectID(),
			Username:  username,
			Email:     email,
			Password:  string(hash),
			Playlists: []primitive.ObjectID{},
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := handler.CreateUser(ctx, user); err != nil {
			logrus.WithError(err).Error("Error creating user")
			response.Error(w, err)
			return
		}

		token, err := tokens.Issue(user.ID.Hex())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, "User registered successfully", map[string]interface{}{
			"user":  user,
			"token": token,
		})
	}
}

func loginUser(handler dao.DbHandler, tokens *auth.TokenService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer closeRequestBody(r)

		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithError(err).Error("Error decoding request body")
			response.Fail(w, http.StatusBadRequest, "Error decoding request body")
			return
		}

		if req.Login == "" || req.Password == "" {
			response.Fail(w, http.StatusBadRequest, "Email/username and password are required")
			return
		}

		user, err := handler.GetUserByLogin(ctx, req.Login)
		if err != nil {
			if apperror.IsNotFound(err) {
				response.Error(w, apperror.ErrInvalidCredentials)
				return
			}
			response.Error(w, err)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			response.Error(w, apperror.ErrInvalidCredentials)
			return
		}

		token, err := tokens.Issue(user.ID.Hex())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "Login successful", map[string]interface{}{
			"user":  user,
			"token": token,
		})
	}
}

func getCurrentUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer closeRequestBody(r)

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			response.Fail(w, http.StatusUnauthorized, "Access token required")
			return
		}

		response.Success(w, http.StatusOK, "", map[string]interface{}{"user": user})
	}
}

func refreshToken(tokens *auth.TokenService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer closeRequestBody(r)

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			response.Fail(w, http.StatusUnauthorized, "Access token required")
			return
		}

		token, err := tokens.Issue(user.ID.Hex())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, "Token refreshed successfully", map[string]interface{}{"token": token})
	}
}
