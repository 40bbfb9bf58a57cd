package http

import (
	"net/http"

	"github.com/MKhiriev/bootcamp-api/models"
)

func (h *Handler) createBootcamp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.CreateBootcampRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "", err)
		return
	}
	if err := h.validator.Validate(ctx, request); err != nil {
		writeError(w, r, "error validating request", err)
		return
	}

	bootcamp, err := h.services.BootcampService.CreateBootcamp(ctx, models.Bootcamp{
		Title:       request.Title,
		Cue:         request.Cue,
		Description: request.Description,
	})
	if err != nil {
		writeError(w, r, "error creating bootcamp", err)
		return
	}

	writeResponse(w, r, models.CreateBootcampResponse{
		Message:  "bootcamp created successfully",
		Bootcamp: bootcamp,
	}, http.StatusCreated)
}

func (h *Handler) addUserToBootcamp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.AddUserRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "", err)
		return
	}
	if err := h.validator.Validate(ctx, request); err != nil {
		writeError(w, r, "error validating request", err)
		return
	}

	if err := h.services.BootcampService.AddUser(ctx, request.BootcampID, request.UserID); err != nil {
		writeError(w, r, "error adding user to bootcamp", err)
		return
	}

	writeMessage(w, r, "user added to bootcamp", http.StatusOK)
}

func (h *Handler) getBootcamp(w http.ResponseWriter, r *http.Request) {
	bootcampID, err := pathID(r)
	if err != nil {
		writeError(w, r, "", err)
		return
	}

	bootcamp, err := h.services.BootcampService.GetBootcamp(r.Context(), bootcampID)
	if err != nil {
		writeError(w, r, "error finding bootcamp", err)
		return
	}

	writeResponse(w, r, bootcamp, http.StatusOK)
}

func (h *Handler) listBootcamps(w http.ResponseWriter, r *http.Request) {
	bootcamps, err := h.services.BootcampService.ListBootcamps(r.Context())
	if err != nil {
		writeError(w, r, "error listing bootcamps", err)
		return
	}

	writeResponse(w, r, bootcamps, http.StatusOK)
}
