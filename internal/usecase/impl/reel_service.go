package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "vestira/internal/delivery/context"
	"vestira/internal/domain/entity"
	domainerrors "vestira/internal/domain/errors"
	"vestira/internal/domain/repository"
	"vestira/internal/domain/service"
	"vestira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultFeedPage  = 1
	defaultFeedLimit = 10
)

// reelService implements the ReelUsecase interface.
type reelService struct {
	reelRepo repository.ReelRepository
	media    service.MediaStorage
	logger   *slog.Logger
}

// ReelServiceParams holds dependencies for reelService, injected by Fx.
type ReelServiceParams struct {
	fx.In

	ReelRepo repository.ReelRepository
	Media    service.MediaStorage
	Logger   *slog.Logger
}

// NewReelService is the constructor for reelService.
func NewReelService(params ReelServiceParams) usecase.ReelUsecase {
	return &reelService{
		reelRepo: params.ReelRepo,
		media:    params.Media,
		logger:   params.Logger,
	}
}

func (srv *reelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores the video via the media collaborator and creates the reel.
func (srv *reelService) Upload(ctx context.Context, partnerID uuid.UUID, input *usecase.UploadReelInput) (*usecase.ReelView, error) {
	if strings.TrimSpace(input.Video) == "" {
		return nil, domainerrors.ErrValidation.WithMessage("Video is required")
	}
	if input.Price <= 0 {
		return nil, domainerrors.ErrValidation.WithMessage("Price must be greater than zero")
	}

	srv.log(ctx).Info("Uploading reel video", slog.Any("partnerID", partnerID))

	fileName := fmt.Sprintf("reel_%d", time.Now().UnixNano())
	videoURL, err := srv.media.UploadVideo(ctx, input.Video, fileName)
	if err != nil {
		srv.log(ctx).Error("Video upload failed", slog.Any("partnerID", partnerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to upload reel video")
	}

	reel := &entity.Reel{
		PartnerID: partnerID,
		VideoURL:  videoURL,
		Caption:   input.Caption,
		Price:     input.Price,
	}
	if err := srv.reelRepo.Create(ctx, reel); err != nil {
		return nil, errors.Wrap(err, "failed to create reel")
	}

	// Reload so the partner association is populated for the response.
	created, err := srv.reelRepo.FindByID(ctx, reel.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload created reel")
	}

	srv.log(ctx).Debug("Reel created", slog.Any("reelID", created.ID), slog.Any("partnerID", partnerID))

	return usecase.NewReelView(created, partnerID), nil
}

// Feed returns one page of reels, newest-first, with pagination metadata.
func (srv *reelService) Feed(ctx context.Context, input *usecase.FeedInput, viewerID uuid.UUID) (*usecase.FeedOutput, error) {
	page := input.Page
	if page < 1 {
		page = defaultFeedPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultFeedLimit
	}

	total, err := srv.reelRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count reels")
	}

	reels, err := srv.reelRepo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feed page")
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	return &usecase.FeedOutput{
		TotalReels:  total,
		CurrentPage: page,
		TotalPages:  totalPages,
		Reels:       usecase.NewReelViews(reels, viewerID),
	}, nil
}

// ListByPartner returns the partner's own reels, newest-first.
func (srv *reelService) ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]*usecase.ReelView, error) {
	reels, err := srv.reelRepo.ListByPartner(ctx, partnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list partner reels")
	}

	return usecase.NewReelViews(reels, partnerID), nil
}

// ToggleLike flips the account's membership in the reel's like set.
func (srv *reelService) ToggleLike(ctx context.Context, reelID, accountID uuid.UUID) (*usecase.ReelView, error) {
	return srv.toggle(ctx, reelID, accountID,
		func(reel *entity.Reel) bool { return reel.LikedBy(accountID) },
		srv.reelRepo.AddLike, srv.reelRepo.RemoveLike)
}

// ToggleSave flips the account's membership in the reel's save set.
func (srv *reelService) ToggleSave(ctx context.Context, reelID, accountID uuid.UUID) (*usecase.ReelView, error) {
	return srv.toggle(ctx, reelID, accountID,
		func(reel *entity.Reel) bool { return reel.SavedBy(accountID) },
		srv.reelRepo.AddSave, srv.reelRepo.RemoveSave)
}

func (srv *reelService) toggle(
	ctx context.Context,
	reelID, accountID uuid.UUID,
	isMember func(*entity.Reel) bool,
	add, remove func(ctx context.Context, reelID, accountID uuid.UUID) error,
) (*usecase.ReelView, error) {
	reel, err := srv.reelRepo.FindByID(ctx, reelID)
	if err != nil {
		if errors.Is(err, repository.ErrReelNotFound) {
			return nil, domainerrors.ErrReelNotFound.WrapMessage("toggle target missing")
		}

		return nil, errors.Wrap(err, "failed to load reel for toggle")
	}

	if isMember(reel) {
		err = remove(ctx, reelID, accountID)
	} else {
		err = add(ctx, reelID, accountID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to toggle reel annotation")
	}

	updated, err := srv.reelRepo.FindByID(ctx, reelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload reel after toggle")
	}

	return usecase.NewReelView(updated, accountID), nil
}

// AddComment appends a comment by the user to the reel.
func (srv *reelService) AddComment(ctx context.Context, reelID, userID uuid.UUID, text string) (*usecase.ReelView, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domainerrors.ErrValidation.WithMessage("Comment text is required")
	}

	if _, err := srv.reelRepo.FindByID(ctx, reelID); err != nil {
		if errors.Is(err, repository.ErrReelNotFound) {
			return nil, domainerrors.ErrReelNotFound.WrapMessage("comment target missing")
		}

		return nil, errors.Wrap(err, "failed to load reel for comment")
	}

	comment := &entity.Comment{
		ReelID: reelID,
		UserID: userID,
		Text:   strings.TrimSpace(text),
	}
	if err := srv.reelRepo.AddComment(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to add comment")
	}

	updated, err := srv.reelRepo.FindByID(ctx, reelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload reel after comment")
	}

	srv.log(ctx).Debug("Comment added", slog.Any("reelID", reelID), slog.Any("userID", userID))

	return usecase.NewReelView(updated, userID), nil
}

// Update edits caption/price under the ownership rule.
func (srv *reelService) Update(ctx context.Context, reelID, partnerID uuid.UUID, input *usecase.UpdateReelInput) (*usecase.ReelView, error) {
	reel, err := srv.loadOwned(ctx, reelID, partnerID)
	if err != nil {
		return nil, err
	}

	if input.Caption != nil {
		reel.Caption = *input.Caption
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, domainerrors.ErrValidation.WithMessage("Price must be greater than zero")
		}
		reel.Price = *input.Price
	}

	if err := srv.reelRepo.Update(ctx, reel); err != nil {
		return nil, errors.Wrap(err, "failed to update reel")
	}

	updated, err := srv.reelRepo.FindByID(ctx, reelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload updated reel")
	}

	return usecase.NewReelView(updated, partnerID), nil
}

// Delete removes the reel permanently under the ownership rule.
func (srv *reelService) Delete(ctx context.Context, reelID, partnerID uuid.UUID) error {
	if _, err := srv.loadOwned(ctx, reelID, partnerID); err != nil {
		return err
	}

	if err := srv.reelRepo.Delete(ctx, reelID); err != nil {
		return errors.Wrap(err, "failed to delete reel")
	}

	srv.log(ctx).Info("Reel deleted", slog.Any("reelID", reelID), slog.Any("partnerID", partnerID))

	return nil
}

// loadOwned fetches the reel and hides it behind not-found when it belongs
// to a different partner, so ownership cannot be probed.
func (srv *reelService) loadOwned(ctx context.Context, reelID, partnerID uuid.UUID) (*entity.Reel, error) {
	reel, err := srv.reelRepo.FindByID(ctx, reelID)
	if err != nil {
		if errors.Is(err, repository.ErrReelNotFound) {
			return nil, domainerrors.ErrReelNotFound.WrapMessage("reel missing")
		}

		return nil, errors.Wrap(err, "failed to load reel")
	}
	if reel.PartnerID != partnerID {
		return nil, domainerrors.ErrReelNotFound.WithMessage("Reel not found or not authorized")
	}

	return reel, nil
}
