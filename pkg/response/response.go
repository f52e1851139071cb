// Package response writes the uniform response envelope and normalizes error
// variants into HTTP statuses.
package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"music-catalog-api/pkg/apperror"

	"github.com/sirupsen/logrus"
)

type Body struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

var development = os.Getenv("ENV") != "production"

// SetEnvironment toggles whether error details are attached to responses.
func SetEnvironment(env string) {
	development = env != "production"
}

// Success writes a 2xx envelope with an optional message and data payload.
func Success(w http.ResponseWriter, code int, message string, data interface{}) {
	write(w, code, Body{Success: true, Message: message, Data: data})
}

// Fail writes a failure envelope with an explicit status, for business
// rejections that are not part of the error taxonomy.
func Fail(w http.ResponseWriter, code int, message string) {
	write(w, code, Body{Success: false, Message: message})
}

// Error normalizes any error into a status and message. Error details ride
// along only outside production.
func Error(w http.ResponseWriter, err error) {
	code, message := Normalize(err)
	body := Body{Success: false, Message: message}
	if development {
		body.Error = err.Error()
	}
	if code >= http.StatusInternalServerError {
		logrus.WithError(err).Error("Request failed")
	}
	write(w, code, body)
}

// Normalize maps the error taxonomy to a status code and response message.
func Normalize(err error) (int, string) {
	var (
		validationErr  *apperror.ValidationError
		duplicateErr   *apperror.DuplicateKeyError
		invalidIDErr   *apperror.InvalidIDError
		notFoundErr    *apperror.NotFoundError
		unavailableErr *apperror.StoreUnavailableError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.As(err, &duplicateErr):
		return http.StatusBadRequest, duplicateErr.Error()
	case errors.As(err, &invalidIDErr):
		return http.StatusBadRequest, invalidIDErr.Error()
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error()
	case errors.Is(err, apperror.ErrInvalidToken):
		return http.StatusUnauthorized, apperror.ErrInvalidToken.Error()
	case errors.Is(err, apperror.ErrExpiredToken):
		return http.StatusUnauthorized, apperror.ErrExpiredToken.Error()
	case errors.Is(err, apperror.ErrInvalidCredentials):
		return http.StatusUnauthorized, apperror.ErrInvalidCredentials.Error()
	case errors.As(err, &unavailableErr):
		return http.StatusServiceUnavailable, unavailableErr.Error()
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

func write(w http.ResponseWriter, code int, body Body) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Error encoding response")
	}
}
