package http

import (
	"net/http"

	"github.com/MKhiriev/bootcamp-api/models"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		writeError(w, r, "", err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, "error finding user", err)
		return
	}

	writeResponse(w, r, user, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, "error listing users", err)
		return
	}

	writeResponse(w, r, users, http.StatusOK)
}

// updateUser changes first and last name of the user in the path. Any
// authenticated caller may update any user.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathID(r)
	if err != nil {
		writeError(w, r, "", err)
		return
	}

	var request models.UpdateUserRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, "", err)
		return
	}
	if err = h.validator.Validate(ctx, request); err != nil {
		writeError(w, r, "error validating request", err)
		return
	}

	user, err := h.services.UserService.UpdateUser(ctx, userID, request.FirstName, request.LastName)
	if err != nil {
		writeError(w, r, "error updating user", err)
		return
	}

	writeResponse(w, r, models.UpdateUserResponse{
		Message: "user updated",
		User: models.UpdatedUser{
			ID:        user.UserID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		writeError(w, r, "", err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		writeError(w, r, "error deleting user", err)
		return
	}

	writeMessage(w, r, "user deleted", http.StatusOK)
}
