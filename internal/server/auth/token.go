// Package auth implements session tokens and password hashing for the
// credential service.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/dmitrijs2005/foliovault/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity embedded in a session token: the registered
// iat/exp pair plus the user fields the admin UI needs without a store
// lookup.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// GenerateToken mints an HS256 token for the given identity. The wire
// format is the standard three dot-separated base64url segments, so tokens
// minted here verify against any other HS256 implementation sharing the
// secret.
func GenerateToken(userID, username, email, role string, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		UserID:   userID,
		Username: username,
		Email:    email,
		Role:     role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of a token and returns its
// claims. Malformed structure and signature mismatch map to
// common.ErrInvalidToken, a past expiry to common.ErrTokenExpired.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// ParseExpiry converts a unit-suffixed lifetime string into a duration.
// Supported suffixes: "d" (days), "h" (hours), "m" (minutes), "s" (seconds),
// e.g. "7d", "24h", "30m", "60s".
func ParseExpiry(expiry string) (time.Duration, error) {
	if len(expiry) < 2 {
		return 0, common.ErrorValidation
	}

	value, err := strconv.Atoi(expiry[:len(expiry)-1])
	if err != nil || value < 0 {
		return 0, common.ErrorValidation
	}

	switch expiry[len(expiry)-1] {
	case 'd':
		return time.Duration(value) * 24 * time.Hour, nil
	case 'h':
		return time.Duration(value) * time.Hour, nil
	case 'm':
		return time.Duration(value) * time.Minute, nil
	case 's':
		return time.Duration(value) * time.Second, nil
	default:
		return 0, common.ErrorValidation
	}
}
