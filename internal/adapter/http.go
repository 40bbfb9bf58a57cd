package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/bootcamp-api/internal/logger"
	"github.com/MKhiriev/bootcamp-api/internal/utils"
	"github.com/MKhiriev/bootcamp-api/models"
	"github.com/go-resty/resty/v2"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs an HTTP implementation of [APIClient].
// baseURL may omit the scheme, in which case http is assumed.
//
// Returns an error if baseURL is empty or cannot be parsed as a valid URL.
func NewHTTPAPIClient(baseURL string, timeout time.Duration, logger *logger.Logger) (APIClient, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	return &httpAPIClient{
		client: utils.NewHTTPClient(normalized, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) SignUp(ctx context.Context, req models.SignUpRequest) (models.SignUpResponse, error) {
	var result models.SignUpResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/signup")
	if err != nil {
		return models.SignUpResponse{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SignUpResponse{}, err
	}

	return result, nil
}

// SignIn stores the returned access token via SetToken.
func (h *httpAPIClient) SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, error) {
	var result models.SignInResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/signin")
	if err != nil {
		return models.SignInResponse{}, fmt.Errorf("signin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SignInResponse{}, err
	}

	h.SetToken(result.AccessToken)
	h.logger.Debug().Int64("id", result.ID).Msg("signed in")
	return result, nil
}

func (h *httpAPIClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.authedRequest(ctx).SetResult(&users).Get("/api/user")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpAPIClient) GetUser(ctx context.Context, userID int64) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		SetResult(&user).
		Get("/api/user/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpAPIClient) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.UpdateUserResponse, error) {
	var result models.UpdateUserResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		SetBody(req).
		SetResult(&result).
		Put("/api/user/{id}")
	if err != nil {
		return models.UpdateUserResponse{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpdateUserResponse{}, err
	}

	return result, nil
}

func (h *httpAPIClient) DeleteUser(ctx context.Context, userID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		Delete("/api/user/{id}")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) CreateBootcamp(ctx context.Context, req models.CreateBootcampRequest) (models.Bootcamp, error) {
	var result models.CreateBootcampResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/bootcamp")
	if err != nil {
		return models.Bootcamp{}, fmt.Errorf("create bootcamp request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Bootcamp{}, err
	}

	return result.Bootcamp, nil
}

func (h *httpAPIClient) AddUserToBootcamp(ctx context.Context, req models.AddUserRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/bootcamp/adduser")
	if err != nil {
		return fmt.Errorf("add user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) GetBootcamp(ctx context.Context, bootcampID int64) (models.Bootcamp, error) {
	var bootcamp models.Bootcamp

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(bootcampID, 10)).
		SetResult(&bootcamp).
		Get("/api/bootcamp/{id}")
	if err != nil {
		return models.Bootcamp{}, fmt.Errorf("get bootcamp request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Bootcamp{}, err
	}

	return bootcamp, nil
}

func (h *httpAPIClient) ListBootcamps(ctx context.Context) ([]models.Bootcamp, error) {
	var bootcamps []models.Bootcamp

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&bootcamps).
		Get("/api/bootcamp")
	if err != nil {
		return nil, fmt.Errorf("list bootcamps request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return bootcamps, nil
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
