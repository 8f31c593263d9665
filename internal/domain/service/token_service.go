package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the decoded claim set carried by a bearer token. The subject
// is the account ID; no roles or server-side state are attached.
type Claims struct {
	AccountID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for minting and verifying bearer tokens.
// Tokens are stateless: everything needed for verification is in the token
// itself plus the process-wide secret.
type TokenService interface {
	// Generate mints a signed token with subject accountID and the
	// configured expiry window.
	Generate(accountID uuid.UUID) (string, error)

	// Validate checks signature and expiry and returns the decoded claims.
	Validate(tokenString string) (*Claims, error)
}
