// Package handlers parses requests, invokes the services and maps their
// errors onto the API's status codes.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mindwell/wellness-backend/internal/api/httpx"
	"github.com/mindwell/wellness-backend/internal/api/validate"
	"github.com/mindwell/wellness-backend/internal/middleware"
	"github.com/mindwell/wellness-backend/internal/services"
)

func writeServiceError(w http.ResponseWriter, err error) {
	var verrs validate.Errs
	switch {
	case errors.As(err, &verrs):
		httpx.WriteError(w, http.StatusBadRequest, "validation_failed", verrs.Error(), verrs)
	case errors.Is(err, services.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "not found", nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", err.Error(), nil)
	case errors.Is(err, services.ErrAccountDisabled):
		httpx.WriteError(w, http.StatusUnauthorized, "account_disabled", err.Error(), nil)
	case errors.Is(err, services.ErrUsernameExists), errors.Is(err, services.ErrEmailExists):
		httpx.WriteError(w, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
	}
}

func writeBadRequest(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil)
}

// currentUser reads the authenticated caller from the request context. The
// auth middleware guarantees presence on guarded routes.
func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing credentials", nil)
	}
	return uid, ok
}

func queryInt(r *http.Request, key, def string) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		v = def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
