package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by every admin session token. TokenID ties the JWT to a
// server-side session row so sign-out can revoke it.
type Claims struct {
	AdminUserID uint   `json:"adminUserId"`
	Role        string `json:"role"`
	TokenID     string `json:"tokenId"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token for an admin user.
func GenerateToken(adminUserID uint, role, tokenID, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		AdminUserID: adminUserID,
		Role:        role,
		TokenID:     tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry and returns the claims.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
