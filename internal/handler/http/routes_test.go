package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/bootcamp-api/internal/config"
	"github.com/MKhiriev/bootcamp-api/internal/logger"
	"github.com/MKhiriev/bootcamp-api/internal/service"
	"github.com/MKhiriev/bootcamp-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// happyServices returns fakes that succeed on every call.
func happyServices() (*fakeAuthService, *fakeUserService, *fakeBootcampService) {
	auth := acceptingAuth()
	auth.signUpFn = func(_ context.Context, u models.User) (models.User, error) {
		u.UserID = 1
		return u, nil
	}
	auth.emailExistsFn = func(context.Context, string) (bool, error) { return false, nil }
	auth.loginFn = func(_ context.Context, email, _ string) (models.User, error) {
		return models.User{UserID: 1, Email: email}, nil
	}
	auth.createTokenFn = func(context.Context, models.User) (models.Token, error) {
		return models.Token{SignedString: validToken}, nil
	}

	users := &fakeUserService{
		getUserFn:   func(_ context.Context, id int64) (models.User, error) { return models.User{UserID: id}, nil },
		listUsersFn: func(context.Context) ([]models.User, error) { return []models.User{}, nil },
		updateUserFn: func(_ context.Context, id int64, first, last string) (models.User, error) {
			return models.User{UserID: id, FirstName: first, LastName: last}, nil
		},
		deleteUserFn: func(context.Context, int64) error { return nil },
	}

	bootcamps := &fakeBootcampService{
		createBootcampFn: func(_ context.Context, b models.Bootcamp) (models.Bootcamp, error) { return b, nil },
		addUserFn:        func(context.Context, int64, int64) error { return nil },
		getBootcampFn:    func(_ context.Context, id int64) (models.Bootcamp, error) { return models.Bootcamp{ID: id}, nil },
		listBootcampsFn:  func(context.Context) ([]models.Bootcamp, error) { return []models.Bootcamp{}, nil },
	}

	return auth, users, bootcamps
}

func newHappyRouter(t *testing.T) http.Handler {
	t.Helper()

	auth, users, bootcamps := happyServices()
	return newRouter(t, auth, users, bootcamps)
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
	body   any
	gated  bool
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	// public
	{http.MethodPost, "/api/signup", models.SignUpRequest{FirstName: "Ana", LastName: "Lee", Email: "ana@x.io", Password: "p"}, false},
	{http.MethodPost, "/api/signin", models.SignInRequest{Email: "ana@x.io", Password: "p"}, false},
	{http.MethodGet, "/api/bootcamp", nil, false},
	// behind the access gate
	{http.MethodGet, "/api/user", nil, true},
	{http.MethodGet, "/api/user/1", nil, true},
	{http.MethodPut, "/api/user/1", models.UpdateUserRequest{FirstName: "A", LastName: "B"}, true},
	{http.MethodDelete, "/api/user/1", nil, true},
	{http.MethodPost, "/api/bootcamp", models.CreateBootcampRequest{Title: "Go", Cue: "GO1", Description: "d"}, true},
	{http.MethodPost, "/api/bootcamp/adduser", models.AddUserRequest{BootcampID: 1, UserID: 1}, true},
	{http.MethodGet, "/api/bootcamp/1", nil, true},
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newHappyRouter(t)

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, router, tc.method, tc.path, validToken, tc.body)

			assert.Less(t, rec.Code, http.StatusMultipleChoices, "body: %s", rec.Body.String())
		})
	}
}

func TestInit_GatedRoutesRejectMissingToken(t *testing.T) {
	// fakes without functions panic on any call, so reaching a service
	// would turn into a 500
	router := newRouter(t, &fakeAuthService{}, nil, nil)

	for _, tc := range expectedRoutes {
		if !tc.gated {
			continue
		}
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, router, tc.method, tc.path, "", tc.body)

			require.Equal(t, http.StatusForbidden, rec.Code)
			body := decodeBody[models.ErrorResponse](t, rec)
			assert.Equal(t, ErrTokenNotProvided.Error(), body.Message)
		})
	}
}

func TestInit_GatedRoutesRejectInvalidToken(t *testing.T) {
	router := newRouter(t, acceptingAuth(), nil, nil)

	for _, tc := range expectedRoutes {
		if !tc.gated {
			continue
		}
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, router, tc.method, tc.path, "forged", tc.body)

			require.Equal(t, http.StatusForbidden, rec.Code)
			body := decodeBody[models.ErrorResponse](t, rec)
			assert.Equal(t, service.ErrTokenIsExpiredOrInvalid.Error(), body.Message)
		})
	}
}

func TestInit_UnknownRouteReturnsJSON404(t *testing.T) {
	router := newRouter(t, nil, nil, nil)

	for _, path := range []string{"/api/nonexistent", "/nothing", "/api/user/1/extra"} {
		t.Run(path, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, path, validToken, nil)

			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			body := decodeBody[models.ErrorResponse](t, rec)
			assert.Equal(t, ErrRouteNotFound.Error(), body.Message)
		})
	}
}

func TestInit_WrongMethodReturnsJSON405(t *testing.T) {
	router := newRouter(t, nil, nil, nil)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/bootcamp"},
		{http.MethodGet, "/api/signup"},
		{http.MethodPost, "/api/user"},
		{http.MethodPatch, "/api/user/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := doRequest(t, router, tt.method, tt.path, "", nil)

			require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			body := decodeBody[models.ErrorResponse](t, rec)
			assert.Equal(t, ErrMethodNotAllowed.Error(), body.Message)
		})
	}
}

func TestInit_EchoesTraceID(t *testing.T) {
	router := newHappyRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/bootcamp", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

func TestInit_CORSPreflight(t *testing.T) {
	svcs := &service.Services{AuthService: acceptingAuth()}
	cfg := config.Server{CORSAllowedOrigins: []string{"https://app.example.com"}}
	router := NewHandler(svcs, cfg, logger.Nop()).Init()

	req := httptest.NewRequest(http.MethodOptions, "/api/user", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
}

func TestInit_ServesMetrics(t *testing.T) {
	router := newHappyRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
