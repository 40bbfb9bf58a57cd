// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the bootcamp REST API.
//
// [APIClient] hides the transport behind one method per endpoint. The HTTP
// implementation ([NewHTTPAPIClient]) keeps the access token returned by
// SignIn and sends it on every gated request.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrForbidden] for
// 403, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/bootcamp-api/models"
)

// APIClient is a client of the bootcamp REST API.
type APIClient interface {
	// SetToken stores the bearer token attached to all subsequent gated
	// requests. SignIn calls it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// SignUp creates an account and returns the new user id.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.SignUpResponse, error)

	// SignIn exchanges credentials for an access token and stores it.
	SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.UpdateUserResponse, error)
	DeleteUser(ctx context.Context, userID int64) error

	CreateBootcamp(ctx context.Context, req models.CreateBootcampRequest) (models.Bootcamp, error)
	AddUserToBootcamp(ctx context.Context, req models.AddUserRequest) error
	GetBootcamp(ctx context.Context, bootcampID int64) (models.Bootcamp, error)

	// ListBootcamps is public and sends no token.
	ListBootcamps(ctx context.Context) ([]models.Bootcamp, error)
}
