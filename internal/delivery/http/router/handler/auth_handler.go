// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"vestira/config"
	"vestira/internal/delivery/http/response"
	"vestira/internal/domain/entity"
	"vestira/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for identity and session handlers.
type AuthHandler struct {
	uc         usecase.AuthUsecase
	cookieName string
	cookieTTL  time.Duration
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		uc:         uc,
		cookieName: cfg.Auth.CookieName,
		cookieTTL:  cfg.Auth.TokenTTL,
	}
}

// authResponse mirrors the session token into the body so non-cookie
// clients can authenticate with a Bearer header.
type authResponse struct {
	Message string               `json:"message"`
	Account *usecase.AccountView `json:"account"`
	Token   string               `json:"token"`
}

// RegisterUser handles the end-user registration request.
func (h *AuthHandler) RegisterUser(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setTokenCookie(c, output.Token)

	return response.JSON(c, http.StatusCreated, &authResponse{
		Message: "User registered successfully",
		Account: output.Account,
		Token:   output.Token,
	})
}

// RegisterPartner handles the partner registration request.
func (h *AuthHandler) RegisterPartner(c echo.Context) error {
	var input usecase.RegisterPartnerInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.RegisterPartner(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setTokenCookie(c, output.Token)

	return response.JSON(c, http.StatusCreated, &authResponse{
		Message: "Partner registered successfully",
		Account: output.Account,
		Token:   output.Token,
	})
}

// LoginUser handles the end-user login request.
func (h *AuthHandler) LoginUser(c echo.Context) error {
	return h.login(c, entity.KindUser)
}

// LoginPartner handles the partner login request.
func (h *AuthHandler) LoginPartner(c echo.Context) error {
	return h.login(c, entity.KindPartner)
}

func (h *AuthHandler) login(c echo.Context, kind entity.AccountKind) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), kind, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setTokenCookie(c, output.Token)

	return response.JSON(c, http.StatusOK, &authResponse{
		Message: "Login successful",
		Account: output.Account,
		Token:   output.Token,
	})
}

// Logout clears the session cookie. The token itself stays valid until it
// expires; there is no server-side session state to revoke.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearTokenCookie(c)

	return response.Message(c, http.StatusOK, "Logout successful")
}

func (h *AuthHandler) setTokenCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearTokenCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
