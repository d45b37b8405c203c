package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// Claims is the identity embedded in a session token.
type Claims struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 session tokens. Verification is
// stateless: nothing is stored server side and tokens cannot be revoked
// before they expire.
type TokenManager struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewTokenManager(secretKey string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

// TTL is how long a freshly issued token stays valid.
func (m *TokenManager) TTL() time.Duration { return m.ttl }

// Generate signs a token for the given user.
func (m *TokenManager) Generate(userID, name string) (string, error) {
	now := m.now()
	claims := &Claims{
		UserID: userID,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses tokenString and returns its claims when the signature,
// algorithm and validity window all check out.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
