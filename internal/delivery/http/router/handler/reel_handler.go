package handler

import (
	"context"
	"net/http"
	"strconv"

	deliverymiddleware "vestira/internal/delivery/http/middleware"
	"vestira/internal/delivery/http/response"
	domainerrors "vestira/internal/domain/errors"
	"vestira/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReelHandler holds dependencies for reel catalog handlers.
type ReelHandler struct {
	uc usecase.ReelUsecase
}

// NewReelHandler is the constructor for ReelHandler, injected by Fx.
func NewReelHandler(uc usecase.ReelUsecase) *ReelHandler {
	return &ReelHandler{uc: uc}
}

// commentInput is the body for adding a comment.
type commentInput struct {
	Text string `json:"text" validate:"required"`
}

// Upload handles the partner reel upload request.
func (h *ReelHandler) Upload(c echo.Context) error {
	account, ok := deliverymiddleware.AccountFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WithMessage("Not authorized, no token")
	}

	var input usecase.UploadReelInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	view, err := h.uc.Upload(c.Request().Context(), account.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, view)
}

// Feed handles the public paginated feed request. Signed-in viewers get
// their like/save flags filled in.
func (h *ReelHandler) Feed(c echo.Context) error {
	input := &usecase.FeedInput{
		Page:  intQuery(c, "page"),
		Limit: intQuery(c, "limit"),
	}

	viewerID := uuid.Nil
	if account, ok := deliverymiddleware.AccountFromContext(c); ok {
		viewerID = account.ID
	}

	output, err := h.uc.Feed(c.Request().Context(), input, viewerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

// ListMine handles the partner's own reel listing.
func (h *ReelHandler) ListMine(c echo.Context) error {
	account, ok := deliverymiddleware.AccountFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WithMessage("Not authorized, no token")
	}

	views, err := h.uc.ListByPartner(c.Request().Context(), account.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, views)
}

// ToggleLike flips the caller's like on the reel.
func (h *ReelHandler) ToggleLike(c echo.Context) error {
	return h.toggle(c, h.uc.ToggleLike)
}

// ToggleSave flips the caller's save on the reel.
func (h *ReelHandler) ToggleSave(c echo.Context) error {
	return h.toggle(c, h.uc.ToggleSave)
}

func (h *ReelHandler) toggle(
	c echo.Context,
	op func(ctx context.Context, reelID, accountID uuid.UUID) (*usecase.ReelView, error),
) error {
	account, ok := deliverymiddleware.AccountFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WithMessage("Not authorized, no token")
	}

	reelID, err := reelIDParam(c)
	if err != nil {
		return err
	}

	view, err := op(c.Request().Context(), reelID, account.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, view)
}

// AddComment appends a comment by the caller to the reel.
func (h *ReelHandler) AddComment(c echo.Context) error {
	account, ok := deliverymiddleware.AccountFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WithMessage("Not authorized, no token")
	}

	reelID, err := reelIDParam(c)
	if err != nil {
		return err
	}

	var input commentInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	view, err := h.uc.AddComment(c.Request().Context(), reelID, account.ID, input.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, view)
}

// Update edits the caption or price of an owned reel.
func (h *ReelHandler) Update(c echo.Context) error {
	account, ok := deliverymiddleware.AccountFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WithMessage("Not authorized, no token")
	}

	reelID, err := reelIDParam(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateReelInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.Update(c.Request().Context(), reelID, account.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, view)
}

// Delete removes an owned reel.
func (h *ReelHandler) Delete(c echo.Context) error {
	account, ok := deliverymiddleware.AccountFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WithMessage("Not authorized, no token")
	}

	reelID, err := reelIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), reelID, account.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Reel deleted successfully")
}

// reelIDParam parses the :id path segment. A malformed ID is indistinguishable
// from a missing reel on the wire.
func reelIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrReelNotFound.WrapMessage("malformed reel id")
	}

	return id, nil
}

// intQuery parses an integer query parameter, returning zero when absent or
// malformed so the usecase applies its defaults.
func intQuery(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return value
}
