// Package auth owns credential handling: bcrypt password hashing and
// the signed-token lifecycle for access and refresh tokens.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims carried by both token kinds. Type distinguishes access tokens
// from refresh tokens so one cannot stand in for the other.
type Claims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256-signed tokens. The subject of
// every token is the user ID it was issued for.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	issuer     string
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration, issuer string) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		issuer:     issuer,
	}
}

// IssueAccessToken signs a short-lived access token for userID.
func (m *TokenManager) IssueAccessToken(userID string) (string, error) {
	return m.issue(userID, TokenTypeAccess, m.accessTTL)
}

// IssueRefreshToken signs a long-lived refresh token for userID.
func (m *TokenManager) IssueRefreshToken(userID string) (string, error) {
	return m.issue(userID, TokenTypeRefresh, m.refreshTTL)
}

// AccessTTL reports the configured access-token lifetime.
func (m *TokenManager) AccessTTL() time.Duration {
	return m.accessTTL
}

func (m *TokenManager) issue(userID, tokenType string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", ErrInvalidToken
	}

	now := time.Now()
	claims := &Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// DecodeAccess verifies an access token and returns the subject user ID.
func (m *TokenManager) DecodeAccess(tokenString string) (string, error) {
	return m.decode(tokenString, TokenTypeAccess)
}

// DecodeRefresh verifies a refresh token and returns the subject user ID.
func (m *TokenManager) DecodeRefresh(tokenString string) (string, error) {
	return m.decode(tokenString, TokenTypeRefresh)
}

func (m *TokenManager) decode(tokenString, expectedType string) (string, error) {
	if strings.TrimSpace(tokenString) == "" {
		return "", ErrMissingToken
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.Type != expectedType {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// TokenFromHeader extracts the bearer token from an Authorization header.
func TokenFromHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(parts[1]), nil
}
