package http

import (
	"net/http"

	"github.com/MKhiriev/bootcamp-api/internal/logger"
	"github.com/MKhiriev/bootcamp-api/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It takes the second space-separated part of the "Authorization" header as
// the token, validates it via [service.AuthService.ParseToken], and on
// success stores the authenticated user's ID in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 403 Forbidden when:
//   - the header is absent or carries no token ([ErrTokenNotProvided]);
//   - the token fails verification ([service.ErrTokenIsExpiredOrInvalid]).
//
// A rejected request never reaches a handler, so no persistence is touched.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("no token in request")
			writeError(w, r, "", ErrTokenNotProvided)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, "", err)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = utils.WithUserID(ctx, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
