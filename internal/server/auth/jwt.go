// Package auth issues and validates the signed bearer tokens that gate
// every note operation. Tokens are self-contained: validity is proven by
// the HMAC signature, not by a server-side lookup.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/arijitp/notekeeper/internal/shared"
)

// Claims carries the standard registered claims plus the owning account id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken signs an HS256 token binding accountID for validityDuration.
func GenerateToken(accountID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: accountID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies the signature and expiry of tokenString and
// returns the embedded account id. Expired tokens yield shared.ErrTokenExpired;
// any other verification failure yields shared.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", shared.ErrTokenExpired
		}
		return "", shared.ErrInvalidToken
	}

	if !token.Valid {
		return "", shared.ErrInvalidToken
	}

	return claims.UserID, nil
}
