package middleware

import (
	"strings"

	"vestira/config"
	"vestira/internal/domain/entity"
	domainerrors "vestira/internal/domain/errors"
	"vestira/internal/usecase"

	"github.com/labstack/echo/v4"
)

// keyAccount is the echo.Context key the authenticated account is stored under.
const keyAccount = "account"

// AuthMiddleware resolves the session token into an account and enforces
// the account-kind split between user and partner routes.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
	cookieName  string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		cookieName:  cfg.Auth.CookieName,
	}
}

// Authenticate validates the session token and loads its account onto the
// request context. The session cookie takes precedence; a Bearer header is
// accepted as fallback for non-browser clients.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.extractToken(c)
		if token == "" {
			return domainerrors.ErrUnauthenticated.WithMessage("Not authorized, no token")
		}

		account, err := m.authUsecase.Resolve(c.Request().Context(), token)
		if err != nil {
			return err
		}

		c.Set(keyAccount, account)

		return next(c)
	}
}

// OptionalAuthenticate loads the account when a valid token is present and
// continues anonymously otherwise. Used by public routes that personalize
// their payload for signed-in viewers.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token := m.extractToken(c); token != "" {
			if account, err := m.authUsecase.Resolve(c.Request().Context(), token); err == nil {
				c.Set(keyAccount, account)
			}
		}

		return next(c)
	}
}

// RequireUser rejects accounts that are not end users. Must run after
// Authenticate.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireKind(next, entity.KindUser, "Not authorized as a user")
}

// RequirePartner rejects accounts that are not partners. Must run after
// Authenticate.
func (m *AuthMiddleware) RequirePartner(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireKind(next, entity.KindPartner, "Not authorized as a partner")
}

func (m *AuthMiddleware) requireKind(next echo.HandlerFunc, kind entity.AccountKind, message string) echo.HandlerFunc {
	return func(c echo.Context) error {
		account, ok := AccountFromContext(c)
		if !ok {
			return domainerrors.ErrUnauthenticated.WithMessage("Not authorized, no token")
		}
		if account.Kind != kind {
			return domainerrors.ErrForbidden.WithMessage(message)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return strings.TrimSpace(token)
	}

	return ""
}

// AccountFromContext returns the account placed by Authenticate, if any.
func AccountFromContext(c echo.Context) (*entity.Account, bool) {
	account, ok := c.Get(keyAccount).(*entity.Account)

	return account, ok
}
