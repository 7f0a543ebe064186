package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"rentacar-backend/internal/booking"
	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/security"
	"rentacar-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError maps the error taxonomy onto HTTP statuses: validation
// failures are 400, absence is 404, missing credentials 401, missing
// rights 403. Anything unclassified is logged and returned as a
// generic 500 so internals never leak to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var conflictErr *booking.ConflictError
	switch {
	case errors.Is(err, booking.ErrFinishBeforeStart),
		errors.Is(err, booking.ErrDurationTooLong),
		errors.Is(err, booking.ErrStartInPast),
		errors.Is(err, booking.ErrCarNotAvailable),
		errors.Is(err, booking.ErrTooCloseToStart),
		errors.Is(err, domain.ErrStatusTransition),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrLicenseExists),
		errors.As(err, &conflictErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCarNotFound),
		errors.Is(err, domain.ErrRentalNotFound),
		errors.Is(err, domain.ErrLicenseNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNoToken),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNoRights):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	default:
		logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "request_id", requestIDFromContext(r.Context()), "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
