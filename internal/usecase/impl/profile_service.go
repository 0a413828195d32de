package impl

import (
	"context"
	"log/slog"
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

// recentOrdersLimit caps the order list embedded in the analytics payload.
const recentOrdersLimit = 5

// profileService implements the ProfileUsecase interface.
type profileService struct {
	accountRepo repository.AccountRepository
	reelRepo    repository.ReelRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	ReelRepo    repository.ReelRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		accountRepo: params.AccountRepo,
		reelRepo:    params.ReelRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UserProfile returns the end user's identity plus liked/saved reels.
func (srv *profileService) UserProfile(ctx context.Context, userID uuid.UUID) (*usecase.UserProfileOutput, error) {
	account, err := srv.loadAccount(ctx, userID, entity.KindUser)
	if err != nil {
		return nil, err
	}

	liked, err := srv.reelRepo.ListLikedBy(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list liked reels")
	}

	saved, err := srv.reelRepo.ListSavedBy(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved reels")
	}

	return &usecase.UserProfileOutput{
		User:       usecase.NewAccountView(account),
		LikedReels: usecase.NewReelViews(liked, userID),
		SavedReels: usecase.NewReelViews(saved, userID),
	}, nil
}

// PartnerProfile returns the partner's own projection.
func (srv *profileService) PartnerProfile(ctx context.Context, partnerID uuid.UUID) (*usecase.AccountView, error) {
	account, err := srv.loadAccount(ctx, partnerID, entity.KindPartner)
	if err != nil {
		return nil, err
	}

	return usecase.NewAccountView(account), nil
}

// UpdatePartnerProfile edits the partner's display fields.
func (srv *profileService) UpdatePartnerProfile(ctx context.Context, partnerID uuid.UUID, input *usecase.UpdatePartnerProfileInput) (*usecase.AccountView, error) {
	account, err := srv.loadAccount(ctx, partnerID, entity.KindPartner)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidation.WithMessage("Name cannot be empty")
		}
		account.Name = name
	}
	if input.BrandName != nil {
		brandName := strings.TrimSpace(*input.BrandName)
		if brandName == "" {
			return nil, domainerrors.ErrValidation.WithMessage("Brand name cannot be empty")
		}
		account.BrandName = brandName
	}
	if input.Description != nil {
		if len(*input.Description) > 300 {
			return nil, domainerrors.ErrValidation.WithMessage("Description must be at most 300 characters")
		}
		account.Description = *input.Description
	}

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to update partner profile")
	}

	srv.log(ctx).Debug("Partner profile updated", slog.Any("partnerID", partnerID))

	return usecase.NewAccountView(account), nil
}

// Analytics computes the partner aggregate on demand. Revenue counts only
// completed orders; the recent list carries the five newest in any state.
func (srv *profileService) Analytics(ctx context.Context, partnerID uuid.UUID) (*usecase.AnalyticsOutput, error) {
	if _, err := srv.loadAccount(ctx, partnerID, entity.KindPartner); err != nil {
		return nil, err
	}

	reels, err := srv.reelRepo.ListByPartner(ctx, partnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reels for analytics")
	}

	orders, err := srv.orderRepo.ListByPartner(ctx, partnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders for analytics")
	}

	out := &usecase.AnalyticsOutput{
		TotalReels:  len(reels),
		TotalOrders: len(orders),
	}
	for _, reel := range reels {
		out.TotalLikes += len(reel.Likes)
		out.TotalSaves += len(reel.Saves)
	}
	for _, order := range orders {
		if order.Status == entity.StatusCompleted {
			out.TotalRevenue += order.TotalAmount
		}
	}

	recent := orders
	if len(recent) > recentOrdersLimit {
		recent = recent[:recentOrdersLimit]
	}
	out.RecentOrders = usecase.NewOrderViews(recent)

	return out, nil
}

// loadAccount fetches the account and verifies it has the expected kind.
func (srv *profileService) loadAccount(ctx context.Context, id uuid.UUID, kind entity.AccountKind) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}
	if account.Kind != kind {
		return nil, domainerrors.ErrAccountNotFound.WrapMessage("profile kind mismatch")
	}

	return account, nil
}
