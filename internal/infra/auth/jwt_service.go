package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"vestira/config"
	"vestira/internal/domain/entity"
	"vestira/internal/domain/service"
)

// claimKind is the private claim carrying the account kind.
const claimKind = "kind"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string        // Secret key for signing session tokens.
	sessionTTL time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("jwt session secret must be provided")
	}

	return &jwtService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: cfg.Auth.TokenTTL,
	}, nil
}

// Generate creates a signed session token bound to the account.
func (s *jwtService) Generate(accountID uuid.UUID, kind entity.AccountKind) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     accountID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(s.sessionTTL).Unix(),
		claimKind: kind.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Validate checks a token's signature and expiry and returns its claims.
func (s *jwtService) Validate(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("session token is not valid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected session token claims")
	}

	subject, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, errors.New("session token subject missing")
	}
	accountID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "session token subject is not a valid account id")
	}

	kindClaim, _ := mapClaims[claimKind].(string)
	kind := entity.AccountKind(kindClaim)
	if !kind.IsValid() {
		return nil, errors.Errorf("session token carries unknown account kind %q", kindClaim)
	}

	claims := &service.SessionClaims{
		AccountID: accountID,
		Kind:      kind,
	}
	if exp, expErr := mapClaims.GetExpirationTime(); expErr == nil && exp != nil {
		claims.ExpiresAt = exp
	}
	if iat, iatErr := mapClaims.GetIssuedAt(); iatErr == nil && iat != nil {
		claims.IssuedAt = iat
	}
	claims.Subject = subject

	return claims, nil
}

// SessionDuration returns the configured duration for session tokens.
func (s *jwtService) SessionDuration() time.Duration {
	return s.sessionTTL
}
