package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload issued at sign-in.
//
// The user identifier is carried both in the custom "id" claim and in the
// standard "sub" claim of [jwt.RegisteredClaims].
type Claims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// Token wraps a signed session token with convenience accessors.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the identity asserted by the token.
	UserID int64 `json:"-"`

	// ExpiresAt is the moment after which the token is rejected.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
