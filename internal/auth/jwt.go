// Package auth issues and validates caller access tokens.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

// JWTManager handles JWT access token generation and validation.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims extends standard JWT claims with the caller's access scope
// and granted actions.
type accessClaims struct {
	jwt.RegisteredClaims
	Scope       map[string]any `json:"scope,omitempty"`
	Permissions []string       `json:"permissions,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT with the caller's user ID
// as subject.
func (m *JWTManager) GenerateAccessToken(caller domain.Caller) (string, error) {
	if caller.UserID == "" {
		return "", fmt.Errorf("sign token: empty user id")
	}

	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   caller.UserID,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Scope:       caller.Scope,
		Permissions: caller.Permissions,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.Caller, error) {
	if tokenString == "" {
		return domain.Caller{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil {
		return domain.Caller{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return domain.Caller{}, fmt.Errorf("invalid token claims")
	}
	if claims.Subject == "" {
		return domain.Caller{}, fmt.Errorf("token has no subject")
	}

	return domain.Caller{
		UserID:      claims.Subject,
		Scope:       claims.Scope,
		Permissions: claims.Permissions,
	}, nil
}
