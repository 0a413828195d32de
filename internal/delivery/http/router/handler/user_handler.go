package handler

import (
	"net/http"

	deliverymiddleware "vestira/internal/delivery/http/middleware"
	"vestira/internal/delivery/http/response"
	domainerrors "vestira/internal/domain/errors"
	"vestira/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for end-user profile handlers.
type UserHandler struct {
	uc usecase.ProfileUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Profile returns the signed-in user's identity with liked and saved reels.
func (h *UserHandler) Profile(c echo.Context) error {
	account, ok := deliverymiddleware.AccountFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WithMessage("Not authorized, no token")
	}

	output, err := h.uc.UserProfile(c.Request().Context(), account.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}
