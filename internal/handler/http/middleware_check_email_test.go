package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/bootcamp-api/internal/store"
	"github.com/MKhiriev/bootcamp-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCheckEmail(h *Handler, body string) (*httptest.ResponseRecorder, string, bool) {
	var (
		nextBody   string
		nextCalled bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		raw, _ := io.ReadAll(r.Body)
		nextBody = string(raw)
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/signup", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	h.checkEmail(next).ServeHTTP(rr, req)

	return rr, nextBody, nextCalled
}

func TestCheckEmail_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		exists      bool
		existsErr   error
		wantStatus  int
		wantNext    bool
		wantChecked bool
		wantMessage string
	}{
		{
			name:        "free email passes with body intact",
			body:        `{"email":"ana@x.io","password":"p"}`,
			wantStatus:  http.StatusCreated,
			wantNext:    true,
			wantChecked: true,
		},
		{
			name:        "taken email is rejected",
			body:        `{"email":"ana@x.io","password":"p"}`,
			exists:      true,
			wantStatus:  http.StatusBadRequest,
			wantChecked: true,
			wantMessage: store.ErrEmailAlreadyExists.Error(),
		},
		{
			name:        "lookup failure is internal",
			body:        `{"email":"ana@x.io"}`,
			existsErr:   errors.New("db down"),
			wantStatus:  http.StatusInternalServerError,
			wantChecked: true,
			wantMessage: "error checking email",
		},
		{
			name:       "no email is left to the handler",
			body:       `{"firstName":"Ana"}`,
			wantStatus: http.StatusCreated,
			wantNext:   true,
		},
		{
			name:       "invalid json is left to the handler",
			body:       `{"email":`,
			wantStatus: http.StatusCreated,
			wantNext:   true,
		},
		{
			name:       "empty body is left to the handler",
			body:       "",
			wantStatus: http.StatusCreated,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checked := false
			auth := &fakeAuthService{
				emailExistsFn: func(_ context.Context, email string) (bool, error) {
					checked = true
					assert.Equal(t, "ana@x.io", email)
					return tt.exists, tt.existsErr
				},
			}
			h := newHandlerWithAuthService(auth)

			rr, nextBody, nextCalled := executeCheckEmail(h, tt.body)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			assert.Equal(t, tt.wantChecked, checked)

			if tt.wantNext {
				assert.Equal(t, tt.body, nextBody, "body must be restored for the handler")
			} else {
				body := decodeBody[models.ErrorResponse](t, rr)
				assert.Equal(t, tt.wantMessage, body.Message)
			}
		})
	}
}

func TestCheckEmail_RunsBeforeFieldValidation(t *testing.T) {
	auth := &fakeAuthService{
		emailExistsFn: func(context.Context, string) (bool, error) { return true, nil },
	}
	router := newRouter(t, auth, nil, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/signup", "", `{"email":"ana@x.io"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[models.ErrorResponse](t, rec)
	assert.Equal(t, store.ErrEmailAlreadyExists.Error(), body.Message)
}
