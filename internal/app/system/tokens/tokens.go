// internal/app/system/tokens/tokens.go
//
// Package tokens issues and verifies the signed bearer tokens that
// authenticate API requests.
package tokens

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultExpiry is the token lifetime when the config leaves it unset.
const DefaultExpiry = 2 * time.Hour

var (
	ErrNoToken      = errors.New("no bearer token in request")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims is the payload carried in a session token.
type Claims struct {
	AccountID string `json:"id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens with a shared HMAC secret.
type Manager struct {
	secret []byte
	expiry time.Duration
}

// NewManager returns a Manager. A zero expiry falls back to DefaultExpiry.
func NewManager(secret string, expiry time.Duration) *Manager {
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	return &Manager{secret: []byte(secret), expiry: expiry}
}

// Issue returns a signed token for the account.
func (m *Manager) Issue(accountID primitive.ObjectID, role string, now time.Time) (string, error) {
	claims := Claims{
		AccountID: accountID.Hex(),
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses and validates a signed token, returning its claims.
func (m *Manager) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// FromHeader extracts the raw token from an Authorization header value.
// Accepts "Bearer <token>" (case-insensitive scheme) or a bare token.
func FromHeader(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" || strings.EqualFold(header, "bearer") {
		return "", ErrNoToken
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		header = strings.TrimSpace(header[7:])
	}
	if header == "" {
		return "", ErrNoToken
	}
	return header, nil
}
