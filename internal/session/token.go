// Package session carries the computed personality profile between
// requests as a signed, client-held cookie token. The server keeps no
// session state of its own.
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cinequiz/pkg/models"
)

// CookieName is where the signed profile token lives on the client.
const CookieName = "cinequiz_profile"

type TokenService struct {
	Secret   []byte
	Issuer   string
	Duration time.Duration
}

type Claims struct {
	Profile models.Profile `json:"profile"`
	jwt.RegisteredClaims
}

// Sign wraps the profile in an HS256 token.
func (ts TokenService) Sign(profile models.Profile) (string, time.Time, error) {
	exp := time.Now().Add(ts.Duration)

	claims := Claims{
		Profile: profile,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.Issuer,
			Subject:   profile.Name,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString(ts.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return s, exp, nil
}

// Parse validates the token and returns the profile it carries.
func (ts TokenService) Parse(tokenString string) (models.Profile, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		// enforce HS256
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.Secret, nil
	})
	if err != nil {
		return models.Profile{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return models.Profile{}, fmt.Errorf("invalid token claims")
	}
	return claims.Profile, nil
}
