package http

import (
	"net/http"

	"github.com/MKhiriev/bootcamp-api/internal/logger"
	"github.com/MKhiriev/bootcamp-api/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignUpRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "", err)
		return
	}
	if err := h.validator.Validate(ctx, request); err != nil {
		writeError(w, r, "error validating request", err)
		return
	}

	user, err := h.services.AuthService.SignUp(ctx, models.User{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Password:  request.Password,
	})
	if err != nil {
		writeError(w, r, "error registering user", err)
		return
	}

	log.Info().Int64("id", user.UserID).Msg("user registered")
	writeResponse(w, r, models.SignUpResponse{
		Message: "user registered successfully",
		UserID:  user.UserID,
	}, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignInRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "", err)
		return
	}
	if err := h.validator.Validate(ctx, request); err != nil {
		writeError(w, r, "error validating request", err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request.Email, request.Password)
	if err != nil {
		writeError(w, r, "error signing in", err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, "error signing in", err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully signed in")
	writeResponse(w, r, models.SignInResponse{
		ID:          foundUser.UserID,
		FirstName:   foundUser.FirstName,
		LastName:    foundUser.LastName,
		Email:       foundUser.Email,
		AccessToken: token.SignedString,
	}, http.StatusOK)
}
