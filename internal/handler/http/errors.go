// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrTokenNotProvided is returned by the auth middleware when the
	// "Authorization" header is absent or carries no token after the scheme.
	ErrTokenNotProvided = errors.New("token not provided")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when an {id} path parameter is not a
	// positive integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrRouteNotFound and ErrMethodNotAllowed back the router fallbacks.
	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
