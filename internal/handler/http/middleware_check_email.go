package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/bootcamp-api/internal/logger"
	"github.com/MKhiriev/bootcamp-api/internal/store"
	"github.com/MKhiriev/bootcamp-api/internal/utils"
	"github.com/MKhiriev/bootcamp-api/models"
)

// checkEmail rejects a sign-up whose email is already taken before the
// handler hashes the password. The body is restored for the next handler.
//
// A body that is not JSON or has no email is passed through, so the handler
// reports it the usual way.
func (h *Handler) checkEmail(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Msg("error reading request body")
			writeError(w, r, "", ErrInvalidJSON)
			return
		}
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		var request models.SignUpRequest
		if err = utils.ReadJSON(bytes.NewReader(body), &request); err != nil || request.Email == "" {
			next.ServeHTTP(w, r)
			return
		}

		exists, err := h.services.AuthService.EmailExists(r.Context(), request.Email)
		if err != nil {
			writeError(w, r, "error checking email", err)
			return
		}
		if exists {
			writeError(w, r, "", store.ErrEmailAlreadyExists)
			return
		}

		next.ServeHTTP(w, r)
	})
}
