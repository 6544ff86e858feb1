// Package auth provides the anti-forgery nonce service.
// #IMPLEMENTATION_DECISION: HS256 HMAC signing - the nonce is issued and
// verified by this service alone, so asymmetric keys add nothing
// #SECURITY_ASSUMPTION: Nonce secret provided via environment, rotated by
// redeployment; rotation invalidates all outstanding nonces
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Custom errors
var (
	ErrInvalidNonce  = errors.New("invalid nonce")
	ErrNonceExpired  = errors.New("nonce has expired")
	ErrInvalidClaims = errors.New("invalid nonce claims")
)

const nonceAction = "assess_submit"

// NonceClaims represents the signed claims of an anti-forgery nonce
// #INTEGRATION_POINT: The frontend receives the nonce via the bootstrap
// endpoint and echoes it back with the submission
type NonceClaims struct {
	jwt.RegisteredClaims
	Action string `json:"action"`
}

// NonceService issues and verifies single-purpose anti-forgery tokens
// #IMPLEMENTATION_DECISION: Service interface for testability
type NonceService interface {
	Issue() (string, time.Time, error)
	Verify(token string) error
}

// nonceService implements NonceService
type nonceService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

// NonceConfig holds nonce service configuration
type NonceConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// NewNonceService creates a new nonce service instance
// #LIBRARY_CHOICE: golang-jwt/jwt/v5 - well-maintained, supports HS256
func NewNonceService(cfg NonceConfig) (NonceService, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("nonce secret must not be empty")
	}
	if cfg.Expiry <= 0 {
		cfg.Expiry = 24 * time.Hour
	}
	return &nonceService{
		secret: []byte(cfg.Secret),
		expiry: cfg.Expiry,
		issuer: cfg.Issuer,
	}, nil
}

// Issue creates a new nonce token.
// #IMPLEMENTATION_DECISION: 24-hour expiry by default, matching the lifetime
// the frontend assumes before it refreshes the page bootstrap
func (s *nonceService) Issue() (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := NonceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Action: nonceAction,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign nonce: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Verify checks the token's signature, expiry, and action binding.
func (s *nonceService) Verify(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &NonceClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrNonceExpired
		}
		return fmt.Errorf("%w: %w", ErrInvalidNonce, err)
	}

	claims, ok := token.Claims.(*NonceClaims)
	if !ok || !token.Valid {
		return ErrInvalidClaims
	}

	if claims.Action != nonceAction {
		return ErrInvalidClaims
	}

	return nil
}
