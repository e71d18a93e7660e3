package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/auth"
	domerrors "github.com/Ananya01-bliss/new-student-mentor/internal/domain/errors"
)

// writeErr sends JSON { "error": message, "code": errCode }. If errCode is empty, a default is used from code.
func writeErr(w http.ResponseWriter, code int, errCode string, message string) {
	if errCode == "" {
		errCode = defaultErrCode(code)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": errCode})
}

func defaultErrCode(httpCode int) string {
	switch httpCode {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusUnprocessableEntity:
		return ErrCodeInvalidStatus
	case http.StatusRequestEntityTooLarge:
		return ErrCodePayloadTooLarge
	case http.StatusTooManyRequests:
		return ErrCodeAccountLocked
	default:
		return ErrCodeInternal
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainErr maps a use-case error onto a status and error code and
// returns the code it wrote. Unknown errors are logged and hidden.
func writeDomainErr(w http.ResponseWriter, log zerolog.Logger, err error) string {
	var locked *auth.LockedError
	var capacity *domerrors.CapacityError
	switch {
	case errors.As(err, &locked):
		w.Header().Set("Retry-After", strconv.Itoa(locked.RetryAfterSeconds))
		writeErr(w, http.StatusTooManyRequests, ErrCodeAccountLocked, err.Error())
		return ErrCodeAccountLocked
	case errors.As(err, &capacity):
		writeErr(w, http.StatusConflict, ErrCodeCapacityExceeded, capacity.Error())
		return ErrCodeCapacityExceeded
	case errors.Is(err, domerrors.ErrValidation):
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return ErrCodeInvalidRequest
	case errors.Is(err, domerrors.ErrNotFound):
		writeErr(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
		return ErrCodeNotFound
	case errors.Is(err, domerrors.ErrNotAuthorized):
		writeErr(w, http.StatusForbidden, ErrCodeForbidden, err.Error())
		return ErrCodeForbidden
	case errors.Is(err, domerrors.ErrInvalidStatus):
		writeErr(w, http.StatusUnprocessableEntity, ErrCodeInvalidStatus, err.Error())
		return ErrCodeInvalidStatus
	case errors.Is(err, domerrors.ErrCapacityExceeded):
		writeErr(w, http.StatusConflict, ErrCodeCapacityExceeded, err.Error())
		return ErrCodeCapacityExceeded
	case errors.Is(err, domerrors.ErrConflict):
		writeErr(w, http.StatusConflict, ErrCodeConflict, err.Error())
		return ErrCodeConflict
	case errors.Is(err, domerrors.ErrInvalidCredentials):
		writeErr(w, http.StatusUnauthorized, ErrCodeInvalidCredentials, err.Error())
		return ErrCodeInvalidCredentials
	}
	log.Error().Err(err).Msg("request failed")
	writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
	return ErrCodeInternal
}

// decodeJSON reads a size-capped JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return false
	}
	return true
}
