package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/yvonlcy/wanderlust-api/internal/domain"
)

// ErrInvalidToken covers bad signatures, lapsed expiry and malformed claims.
// Callers must not surface which of those failed to the client.
var ErrInvalidToken = errors.New("invalid or expired token")

// ErrInvalidTokenType is returned when a token carries the wrong type tag,
// e.g. an access token presented where a refresh token is required.
var ErrInvalidTokenType = errors.New("invalid token type")

// TokenManager issues and validates JWT access and refresh tokens. The two
// kinds are signed with distinct secrets so a leaked access secret cannot
// be used to mint long-lived refresh tokens.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(accessSecret, refreshSecret string, accessTTLMinutes, refreshTTLHours int) *TokenManager {
	if accessTTLMinutes <= 0 {
		accessTTLMinutes = 15
	}
	if refreshTTLHours <= 0 {
		refreshTTLHours = 7 * 24
	}
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     time.Duration(accessTTLMinutes) * time.Minute,
		refreshTTL:    time.Duration(refreshTTLHours) * time.Hour,
	}
}

// Claims describes the JWT payload. TokenType is mandatory; a token without
// it fails validation rather than defaulting to either kind.
type Claims struct {
	AccountID string           `json:"id"`
	Role      domain.Role      `json:"role"`
	TokenType domain.TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// IssueAccessToken signs a short-lived access token for the account.
func (tm *TokenManager) IssueAccessToken(accountID string, role domain.Role) (string, time.Time, error) {
	return tm.issue(accountID, role, domain.TokenTypeAccess, tm.accessSecret, tm.accessTTL)
}

// IssueRefreshToken signs a long-lived refresh token for the account.
func (tm *TokenManager) IssueRefreshToken(accountID string, role domain.Role) (string, time.Time, error) {
	return tm.issue(accountID, role, domain.TokenTypeRefresh, tm.refreshSecret, tm.refreshTTL)
}

func (tm *TokenManager) issue(accountID string, role domain.Role, kind domain.TokenType, secret []byte, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &Claims{
		AccountID: accountID,
		Role:      role,
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseAccessToken validates an access token and returns its claims.
func (tm *TokenManager) ParseAccessToken(tokenStr string) (*Claims, error) {
	return tm.parse(tokenStr, tm.accessSecret, domain.TokenTypeAccess)
}

// ParseRefreshToken validates a refresh token and returns its claims.
func (tm *TokenManager) ParseRefreshToken(tokenStr string) (*Claims, error) {
	return tm.parse(tokenStr, tm.refreshSecret, domain.TokenTypeRefresh)
}

func (tm *TokenManager) parse(tokenStr string, secret []byte, want domain.TokenType) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != want {
		return nil, ErrInvalidTokenType
	}
	return claims, nil
}

// Refresh verifies a refresh token and mints a new access token bound to
// the same account and role.
func (tm *TokenManager) Refresh(refreshToken string) (string, time.Time, error) {
	claims, err := tm.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", time.Time{}, err
	}
	return tm.IssueAccessToken(claims.AccountID, claims.Role)
}
