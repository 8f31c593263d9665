// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"stockroom/config"
	"stockroom/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Process-wide signing key, read once at startup.
	ttl    time.Duration // Token time-to-live, 1 hour unless configured otherwise.
}

// NewJWTService is the constructor for jwtService. An empty secret is a
// fatal configuration error: construction fails and the app never starts.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.Auth.TokenTTL
	if ttl == 0 {
		ttl = time.Hour
	}

	return &jwtService{
		secret: cfg.Auth.Secret,
		ttl:    ttl,
	}, nil
}

// Generate mints an HS256-signed token with subject = accountID and
// expiry = now + ttl.
func (s *jwtService) Generate(accountID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks signature and expiry and returns the decoded claims.
// Malformed, tampered and expired tokens all fail here; verification is
// pure and touches no external state.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	if claims.AccountID == uuid.Nil {
		// Fall back to the registered subject for tokens minted without
		// the custom claim.
		id, parseErr := uuid.Parse(claims.Subject)
		if parseErr != nil {
			return nil, errors.New("token subject is not a valid account id")
		}
		claims.AccountID = id
	}

	return claims, nil
}
