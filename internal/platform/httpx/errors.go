package httpx

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/campuslex/campuslex/internal/shared"
)

// RespondError maps domain errors to HTTP responses. Response details for the
// auth and role failures are fixed strings the API clients match on, so they
// must not change. The role gates answer 400, not 403.
func RespondError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, shared.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		Problem(w, http.StatusUnauthorized, "Unauthorized", "Incorrect username or password")
	case errors.Is(err, shared.ErrInvalidToken):
		w.Header().Set("WWW-Authenticate", "Bearer")
		Problem(w, http.StatusUnauthorized, "Unauthorized", "Could not validate credentials")
	case errors.Is(err, shared.ErrNotAdmin):
		Problem(w, http.StatusBadRequest, "Bad Request", "Not an admin user")
	case errors.Is(err, shared.ErrNotStudent):
		Problem(w, http.StatusBadRequest, "Bad Request", "Only students can enroll in courses")
	case errors.Is(err, shared.ErrUnsupportedFileType):
		Problem(w, http.StatusBadRequest, "Bad Request", "Unsupported file type")
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", "Resource not found")
	case errors.As(err, &validationErrs):
		Problem(w, http.StatusBadRequest, "Validation Failed", validationErrs.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
