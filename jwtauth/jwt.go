package jwtauth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessTokenDuration matches the authToken cookie max-age: the internal
	// session outlives the provider token on purpose.
	AccessTokenDuration = 7 * 24 * time.Hour

	CookiePath = "/"
)

type JWTClaims struct {
	jwt.RegisteredClaims
	Type string `json:"typ"`
}

// NewAccessClaims builds the claims for an internal session token.
func NewAccessClaims(subject, jti string, now time.Time) JWTClaims {
	return JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "loopline",
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        jti,
		},
		Type: "access",
	}
}
