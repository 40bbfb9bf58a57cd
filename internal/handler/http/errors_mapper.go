package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/bootcamp-api/internal/logger"
	"github.com/MKhiriev/bootcamp-api/internal/service"
	"github.com/MKhiriev/bootcamp-api/internal/store"
	"github.com/MKhiriev/bootcamp-api/internal/utils"
	"github.com/MKhiriev/bootcamp-api/internal/validators"
	"github.com/MKhiriev/bootcamp-api/models"
)

// errorStatusMap lists the errors a client can cause. Anything else is a 500.
// Every chain carries at most one of these sentinels.
var errorStatusMap = map[error]int{
	ErrInvalidJSON:      http.StatusBadRequest,
	ErrInvalidID:        http.StatusBadRequest,
	ErrTokenNotProvided: http.StatusForbidden,
	ErrRouteNotFound:    http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,

	validators.ErrMissingRequiredFields: http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrPasswordTooLong:         http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,

	// duplicate email is a client error, reported as 400
	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrBootcampNotFound:   http.StatusNotFound,
}

// statusFromError returns the status for err and the sentinel it matched.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError maps err to a status and writes models.ErrorResponse.
//
// Client errors carry the sentinel message (the full list of fields for a
// validation error). Internal errors carry internalMessage and the
// underlying error text, and are logged with the authenticated user id
// when the request passed the auth gate.
func writeError(w http.ResponseWriter, r *http.Request, internalMessage string, err error) {
	log := logger.FromRequest(r)

	status, target := statusFromError(err)
	response := models.ErrorResponse{Message: internalMessage}

	switch {
	case status == http.StatusInternalServerError:
		event := log.Err(err).Str("uri", r.URL.Path)
		if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
			event = event.Int64("user_id", userID)
		}
		event.Msg(internalMessage)
		response.Error = err.Error()
	default:
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
		response.Message = target.Error()

		var validationErr *validators.ValidationError
		if errors.As(err, &validationErr) {
			response.Message = validationErr.Error()
		}
	}

	if _, wErr := utils.WriteJSON(w, response, status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}

// writeMessage writes a models.MessageResponse with the given status.
func writeMessage(w http.ResponseWriter, r *http.Request, message string, status int) {
	writeResponse(w, r, models.MessageResponse{Message: message}, status)
}

func writeResponse(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, "", ErrRouteNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, "", ErrMethodNotAllowed)
}
