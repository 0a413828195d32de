package service

import (
	"time"

	"vestira/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are the custom claims carried by a session token.
// Expiry is fixed at issuance; tokens are never renewed by use.
type SessionClaims struct {
	AccountID uuid.UUID
	Kind      entity.AccountKind
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed session token bound to the account.
	Generate(accountID uuid.UUID, kind entity.AccountKind) (string, error)

	// Validate checks a token's signature and expiry and returns its claims.
	Validate(tokenString string) (*SessionClaims, error)

	// SessionDuration returns the configured token lifetime, used for the
	// cookie Max-Age so both credentials expire together.
	SessionDuration() time.Duration
}
