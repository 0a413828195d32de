package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	deliverycontext "vestira/internal/delivery/context"
	"vestira/internal/domain/entity"
	domainerrors "vestira/internal/domain/errors"
	"vestira/internal/domain/repository"
	"vestira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// priceEpsilon absorbs float64 representation noise so a client total that
// sits exactly on the tolerance boundary is still accepted.
const priceEpsilon = 1e-9

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Place creates a pending order after price-consistency validation. The reel
// read and the order insert share one transaction so the reel cannot vanish
// between the price check and the write.
func (srv *orderService) Place(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*usecase.OrderView, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidation.WithMessage("Quantity must be at least 1")
	}
	if err := validateCustomerInfo(&input.CustomerInfo); err != nil {
		return nil, err
	}

	reelID, err := uuid.Parse(input.ReelID)
	if err != nil {
		return nil, domainerrors.ErrReelNotFound.WrapMessage("malformed reel id")
	}

	srv.log(ctx).Info("Placing order", slog.Any("userID", userID), slog.Any("reelID", reelID))

	order := &entity.Order{
		UserID:   userID,
		ReelID:   &reelID,
		Quantity: input.Quantity,
		CustomerInfo: entity.CustomerInfo{
			Name:    strings.TrimSpace(input.CustomerInfo.Name),
			Email:   normalizeEmail(input.CustomerInfo.Email),
			Phone:   strings.TrimSpace(input.CustomerInfo.Phone),
			Address: strings.TrimSpace(input.CustomerInfo.Address),
		},
		Notes:       input.Notes,
		TotalAmount: input.TotalAmount,
		Status:      entity.StatusPending,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reel, findErr := repoFactory.ReelRepo().FindByID(ctx, reelID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrReelNotFound) {
				return domainerrors.ErrReelNotFound.WrapMessage("order target missing")
			}

			return errors.Wrap(findErr, "failed to load reel for order")
		}

		expected := reel.Price * float64(input.Quantity)
		if math.Abs(input.TotalAmount-expected) > entity.PriceTolerance+priceEpsilon {
			return domainerrors.ErrValidation.WithMessage("Total amount does not match the current price")
		}

		order.Reel = reel

		return repoFactory.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Warn("Order placement failed", slog.Any("userID", userID), slog.Any("reelID", reelID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order placement transaction")
	}

	srv.log(ctx).Debug("Order placed", slog.Any("orderID", order.ID), slog.Any("userID", userID))

	return usecase.NewOrderView(order), nil
}

// ListForUser returns the user's own orders, newest-first.
func (srv *orderService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*usecase.OrderView, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return usecase.NewOrderViews(orders), nil
}

// ListForPartner returns orders on the partner's reels, newest-first.
func (srv *orderService) ListForPartner(ctx context.Context, partnerID uuid.UUID) ([]*usecase.OrderView, error) {
	orders, err := srv.orderRepo.ListByPartner(ctx, partnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list partner orders")
	}

	return usecase.NewOrderViews(orders), nil
}

// UpdateStatus moves the order along the fulfillment state machine. Only the
// partner owning the order's reel may call this; everyone else sees not-found.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID, partnerID uuid.UUID, status string) (*usecase.OrderView, error) {
	next := entity.OrderStatus(strings.ToLower(strings.TrimSpace(status)))
	if !next.IsValid() {
		return nil, domainerrors.ErrValidation.WithMessage(fmt.Sprintf("Invalid order status %q", status))
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loaded, findErr := repoFactory.OrderRepo().FindByID(ctx, orderID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound.WrapMessage("status update target missing")
			}

			return errors.Wrap(findErr, "failed to load order for status update")
		}

		// An order whose reel was deleted has no owner to act on it.
		if loaded.Reel == nil {
			return domainerrors.ErrOrderNotFound.WithMessage("Order item no longer available")
		}
		if loaded.Reel.PartnerID != partnerID {
			return domainerrors.ErrForbidden.WithMessage("Not authorized to update this order")
		}

		if !loaded.Status.CanTransitionTo(next) {
			return domainerrors.ErrValidation.WithMessage(
				fmt.Sprintf("Cannot move order from %s to %s", loaded.Status, next))
		}

		if updateErr := repoFactory.OrderRepo().UpdateStatus(ctx, orderID, next); updateErr != nil {
			return errors.Wrap(updateErr, "failed to persist order status")
		}

		loaded.Status = next
		order = loaded

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order status update failed",
			slog.Any("orderID", orderID), slog.Any("partnerID", partnerID),
			slog.String("status", string(next)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute status update transaction")
	}

	srv.log(ctx).Info("Order status updated", slog.Any("orderID", orderID), slog.String("status", string(next)))

	return usecase.NewOrderView(order), nil
}

func validateCustomerInfo(info *usecase.CustomerInfoInput) error {
	if strings.TrimSpace(info.Name) == "" ||
		strings.TrimSpace(info.Email) == "" ||
		strings.TrimSpace(info.Phone) == "" {
		return domainerrors.ErrValidation.WithMessage("Customer name, email, and phone are required")
	}

	return nil
}
