package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/bootcamp-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNoBearerToken is returned by ParseBearerToken when the header carries no
// token after the scheme.
var ErrNoBearerToken = errors.New("no bearer token in `Authorization` header")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - id        : the user ID as a number
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus tokenDuration
//   - Issuer    (iss): only when issuer is non-empty
//
// Returns an error if signKey is empty or tokenDuration is not positive.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("bootcamp-api", 42, time.Hour, "secret", time.Now())
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string, issuedAt time.Time) (models.Token, error) {
	if tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	expiresAt := issuedAt.Add(tokenDuration)
	claims := &models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       userID,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// the user identifier it asserts.
//
// Validation includes:
//   - HS256 as the only accepted signing method
//   - Signature verification using the provided sign key
//   - Expiration (exp) claim presence and check against now
//   - Issuer (iss) claim check, only when tokenIssuer is non-empty
//   - A positive user ID in the "id" claim, or in "sub" when "id" is absent
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "", time.Now())
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now time.Time) (models.Token, error) {
	if tokenSignKey == "" {
		return models.Token{}, errors.New("empty token sign key")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID := claims.UserID
	if userID == 0 && claims.Subject != "" {
		userID, err = strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			return models.Token{}, fmt.Errorf("error occurred during converting subject to user ID: %w", err)
		}
	}
	if userID <= 0 {
		return models.Token{}, errors.New("token carries no user ID")
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       userID,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ParseBearerToken returns the second space-separated part of an
// "Authorization" header value. Any scheme is accepted.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(authorizationHeader, " ")
	if len(parts) < 2 || parts[1] == "" {
		return "", ErrNoBearerToken
	}
	return parts[1], nil
}
