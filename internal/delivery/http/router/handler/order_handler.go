package handler

import (
	"net/http"

	deliverymiddleware "vestira/internal/delivery/http/middleware"
	"vestira/internal/delivery/http/response"
	domainerrors "vestira/internal/domain/errors"
	"vestira/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order ledger handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// statusInput is the body for a fulfillment status change.
type statusInput struct {
	Status string `json:"status" validate:"required"`
}

// Place handles the end-user order placement request.
func (h *OrderHandler) Place(c echo.Context) error {
	account, ok := deliverymiddleware.AccountFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WithMessage("Not authorized, no token")
	}

	var input usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	view, err := h.uc.Place(c.Request().Context(), account.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, view)
}

// ListMine handles the end user's own order listing.
func (h *OrderHandler) ListMine(c echo.Context) error {
	account, ok := deliverymiddleware.AccountFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WithMessage("Not authorized, no token")
	}

	views, err := h.uc.ListForUser(c.Request().Context(), account.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, views)
}

// ListForPartner handles the partner listing of orders on their reels.
func (h *OrderHandler) ListForPartner(c echo.Context) error {
	account, ok := deliverymiddleware.AccountFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WithMessage("Not authorized, no token")
	}

	views, err := h.uc.ListForPartner(c.Request().Context(), account.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, views)
}

// UpdateStatus handles the partner's fulfillment status change.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	account, ok := deliverymiddleware.AccountFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WithMessage("Not authorized, no token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrOrderNotFound.WrapMessage("malformed order id")
	}

	var input statusInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	view, err := h.uc.UpdateStatus(c.Request().Context(), orderID, account.ID, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, view)
}
