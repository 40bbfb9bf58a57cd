package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/bootcamp-api/internal/utils"
	"github.com/go-chi/chi/v5"
)

// decodeJSON reads the request body into dst. An empty body leaves dst zero.
func decodeJSON(r *http.Request, dst any) error {
	if err := utils.ReadJSON(r.Body, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// pathID parses the {id} URL parameter as a positive int64.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	return id, nil
}
