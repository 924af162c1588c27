package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

// Claims carries only the user identity. Roles are intentionally absent:
// they are re-derived from group membership on every request so that
// roster changes take effect without re-login.
type Claims struct {
	UserID    uint   `json:"userId"`
	TokenType string `json:"type"`
	IsDemo    bool   `json:"isDemo,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken issues an HS256 token of the given type.
func GenerateToken(userID uint, tokenType string, isDemo bool, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:    userID,
		TokenType: tokenType,
		IsDemo:    isDemo,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// TokenPair issues an access/refresh pair for the user.
func TokenPair(userID uint, isDemo bool, secret string, accessTTL, refreshTTL time.Duration) (access, refresh string, err error) {
	access, err = GenerateToken(userID, TokenAccess, isDemo, secret, accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = GenerateToken(userID, TokenRefresh, isDemo, secret, refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ParseToken verifies the signature and expiry and returns the claims.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
