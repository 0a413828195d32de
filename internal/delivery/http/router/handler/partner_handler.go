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

// PartnerHandler holds dependencies for partner profile and analytics handlers.
type PartnerHandler struct {
	uc usecase.ProfileUsecase
}

// NewPartnerHandler is the constructor for PartnerHandler, injected by Fx.
func NewPartnerHandler(uc usecase.ProfileUsecase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

// Profile returns the signed-in partner's projection.
func (h *PartnerHandler) Profile(c echo.Context) error {
	account, ok := deliverymiddleware.AccountFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WithMessage("Not authorized, no token")
	}

	view, err := h.uc.PartnerProfile(c.Request().Context(), account.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, view)
}

// UpdateProfile edits the partner's display fields.
func (h *PartnerHandler) UpdateProfile(c echo.Context) error {
	account, ok := deliverymiddleware.AccountFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WithMessage("Not authorized, no token")
	}

	var input usecase.UpdatePartnerProfileInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	view, err := h.uc.UpdatePartnerProfile(c.Request().Context(), account.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, view)
}

// Analytics returns the partner's on-demand sales and engagement aggregate.
func (h *PartnerHandler) Analytics(c echo.Context) error {
	account, ok := deliverymiddleware.AccountFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WithMessage("Not authorized, no token")
	}

	output, err := h.uc.Analytics(c.Request().Context(), account.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}
