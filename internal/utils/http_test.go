package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/bootcamp-api/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := models.MessageResponse{Message: "user deleted"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}
	if w.Body.String() != `{"message":"user deleted"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestWriteJSON_ErrorResponseOmitsEmptyError(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.ErrorResponse{Message: "user not found"}, http.StatusNotFound)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if w.Body.String() != `{"message":"user not found"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_UserHidesPassword(t *testing.T) {
	w := httptest.NewRecorder()
	user := models.User{UserID: 1, FirstName: "Ana", Email: "ana@test.io", Password: "$2a$10$hash"}

	if _, err := WriteJSON(w, user, http.StatusOK); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("expected valid JSON, got: %v", err)
	}
	if _, ok := decoded["password"]; ok {
		t.Error("password must never be serialized")
	}
	if decoded["firstName"] != "Ana" {
		t.Errorf("expected firstName 'Ana', got %v", decoded["firstName"])
	}
}

func TestReadJSON_TrailingDataIsTyped(t *testing.T) {
	var got models.SignInRequest
	err := ReadJSON(strings.NewReader(`{"email":"ana@test.io"} 1`), &got)

	if !errors.Is(err, ErrTrailingData) {
		t.Fatalf("expected ErrTrailingData, got: %v", err)
	}
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    models.SignInRequest
		wantErr bool
	}{
		{
			name: "valid body",
			body: `{"email":"ana@test.io","password":"pw"}`,
			want: models.SignInRequest{Email: "ana@test.io", Password: "pw"},
		},
		{
			name: "empty body",
			body: ``,
			want: models.SignInRequest{},
		},
		{
			name:    "malformed body",
			body:    `{"email":`,
			wantErr: true,
		},
		{
			name:    "wrong type",
			body:    `{"email":42}`,
			wantErr: true,
		},
		{
			name: "trailing whitespace",
			body: "{\"email\":\"ana@test.io\"}\n  ",
			want: models.SignInRequest{Email: "ana@test.io"},
		},
		{
			name:    "trailing garbage",
			body:    `{"email":"ana@test.io"}garbage`,
			wantErr: true,
		},
		{
			name:    "second value",
			body:    `{"email":"ana@test.io"}{"email":"lee@test.io"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.SignInRequest
			err := ReadJSON(strings.NewReader(tt.body), &got)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
