package impl

import (
	"context"
	"testing"

	"vestira/internal/domain/entity"
	domainerrors "vestira/internal/domain/errors"
	"vestira/internal/domain/repository"
	mockRepo "vestira/internal/mocks/repository"
	mockSvc "vestira/internal/mocks/service"
	"vestira/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reelServiceFixtures holds all test dependencies for reel service tests.
type reelServiceFixtures struct {
	service  usecase.ReelUsecase
	reelRepo *mockRepo.MockReelRepository
	media    *mockSvc.MockMediaStorage
}

func createTestReelService(t *testing.T) reelServiceFixtures {
	t.Helper()

	reelRepo := &mockRepo.MockReelRepository{}
	media := &mockSvc.MockMediaStorage{}

	service := NewReelService(ReelServiceParams{
		ReelRepo: reelRepo,
		Media:    media,
		Logger:   newDiscardLogger(),
	})

	return reelServiceFixtures{
		service:  service,
		reelRepo: reelRepo,
		media:    media,
	}
}

func TestReelService_Upload_Success(t *testing.T) {
	fx := createTestReelService(t)
	ctx := context.Background()
	partnerID := uuid.New()
	reelID := uuid.New()

	fx.media.On("UploadVideo", mock.Anything, "data:video/mp4;base64,AAAA", mock.AnythingOfType("string")).
		Return("https://cdn.example.com/v.mp4", nil)
	fx.reelRepo.On("Create", ctx, mock.AnythingOfType("*entity.Reel")).
		Run(func(args mock.Arguments) {
			reel := args.Get(1).(*entity.Reel)
			reel.ID = reelID
		}).
		Return(nil)
	fx.reelRepo.On("FindByID", ctx, reelID).
		Return(newTestReel(reelID, partnerID, 19.99), nil)

	view, err := fx.service.Upload(ctx, partnerID, &usecase.UploadReelInput{
		Video:   "data:video/mp4;base64,AAAA",
		Caption: "fresh drop",
		Price:   19.99,
	})

	require.NoError(t, err)
	assert.Equal(t, reelID, view.ID)
	assert.Equal(t, 19.99, view.Price)
	require.NotNil(t, view.Partner)
	assert.Equal(t, "Brand Co", view.Partner.BrandName)
}

func TestReelService_Upload_RejectsMissingVideo(t *testing.T) {
	fx := createTestReelService(t)

	_, err := fx.service.Upload(context.Background(), uuid.New(), &usecase.UploadReelInput{
		Video: "   ",
		Price: 10,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	fx.media.AssertNotCalled(t, "UploadVideo", mock.Anything, mock.Anything, mock.Anything)
}

func TestReelService_Upload_RejectsNonPositivePrice(t *testing.T) {
	fx := createTestReelService(t)

	for _, price := range []float64{0, -5} {
		_, err := fx.service.Upload(context.Background(), uuid.New(), &usecase.UploadReelInput{
			Video: "data:video/mp4;base64,AAAA",
			Price: price,
		})

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.HTTPCode())
	}
}

func TestReelService_Feed_PaginationDefaults(t *testing.T) {
	fx := createTestReelService(t)
	ctx := context.Background()

	fx.reelRepo.On("Count", ctx).Return(int64(25), nil)
	fx.reelRepo.On("List", ctx, 0, 10).Return([]*entity.Reel{}, nil)

	output, err := fx.service.Feed(ctx, &usecase.FeedInput{Page: 0, Limit: -3}, uuid.Nil)

	require.NoError(t, err)
	assert.Equal(t, int64(25), output.TotalReels)
	assert.Equal(t, 1, output.CurrentPage)
	assert.Equal(t, int64(3), output.TotalPages)
	fx.reelRepo.AssertExpectations(t)
}

// Paging through the whole feed must reproduce the full newest-first list
// with no gaps or duplicates.
func TestReelService_Feed_PagesConcatenateExactly(t *testing.T) {
	fx := createTestReelService(t)
	ctx := context.Background()
	partnerID := uuid.New()

	all := make([]*entity.Reel, 7)
	for i := range all {
		all[i] = newTestReel(uuid.New(), partnerID, 10)
	}

	const limit = 3
	fx.reelRepo.On("Count", ctx).Return(int64(len(all)), nil)
	fx.reelRepo.On("List", ctx, 0, limit).Return(all[0:3], nil)
	fx.reelRepo.On("List", ctx, 3, limit).Return(all[3:6], nil)
	fx.reelRepo.On("List", ctx, 6, limit).Return(all[6:7], nil)

	var collected []uuid.UUID
	for page := 1; page <= 3; page++ {
		output, err := fx.service.Feed(ctx, &usecase.FeedInput{Page: page, Limit: limit}, uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, int64(3), output.TotalPages)
		for _, view := range output.Reels {
			collected = append(collected, view.ID)
		}
	}

	require.Len(t, collected, len(all))
	seen := make(map[uuid.UUID]bool, len(all))
	for i, id := range collected {
		assert.Equal(t, all[i].ID, id, "page concatenation must preserve order")
		assert.False(t, seen[id], "no reel may appear twice")
		seen[id] = true
	}
}

func TestReelService_ToggleLike_AddsThenRemoves(t *testing.T) {
	fx := createTestReelService(t)
	ctx := context.Background()
	partnerID := uuid.New()
	userID := uuid.New()
	reelID := uuid.New()

	unliked := newTestReel(reelID, partnerID, 10)
	liked := newTestReel(reelID, partnerID, 10)
	liked.Likes = []uuid.UUID{userID}

	// First toggle: membership absent, expect AddLike.
	fx.reelRepo.On("FindByID", ctx, reelID).Return(unliked, nil).Once()
	fx.reelRepo.On("AddLike", ctx, reelID, userID).Return(nil).Once()
	fx.reelRepo.On("FindByID", ctx, reelID).Return(liked, nil).Once()

	view, err := fx.service.ToggleLike(ctx, reelID, userID)
	require.NoError(t, err)
	assert.True(t, view.IsLiked)
	assert.Equal(t, 1, view.LikesCount)

	// Second toggle: membership present, expect RemoveLike.
	fx.reelRepo.On("FindByID", ctx, reelID).Return(liked, nil).Once()
	fx.reelRepo.On("RemoveLike", ctx, reelID, userID).Return(nil).Once()
	fx.reelRepo.On("FindByID", ctx, reelID).Return(unliked, nil).Once()

	view, err = fx.service.ToggleLike(ctx, reelID, userID)
	require.NoError(t, err)
	assert.False(t, view.IsLiked)
	assert.Equal(t, 0, view.LikesCount)

	fx.reelRepo.AssertExpectations(t)
}

func TestReelService_ToggleSave_MissingReel(t *testing.T) {
	fx := createTestReelService(t)
	ctx := context.Background()
	reelID := uuid.New()

	fx.reelRepo.On("FindByID", ctx, reelID).Return(nil, repository.ErrReelNotFound)

	_, err := fx.service.ToggleSave(ctx, reelID, uuid.New())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}

func TestReelService_AddComment_Success(t *testing.T) {
	fx := createTestReelService(t)
	ctx := context.Background()
	partnerID := uuid.New()
	userID := uuid.New()
	reelID := uuid.New()

	bare := newTestReel(reelID, partnerID, 10)
	commented := newTestReel(reelID, partnerID, 10)
	commented.Comments = []*entity.Comment{{
		ID:     uuid.New(),
		ReelID: reelID,
		UserID: userID,
		Author: newTestUser(userID),
		Text:   "looks great",
	}}

	fx.reelRepo.On("FindByID", ctx, reelID).Return(bare, nil).Once()
	fx.reelRepo.On("AddComment", ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(args mock.Arguments) {
			comment := args.Get(1).(*entity.Comment)
			assert.Equal(t, reelID, comment.ReelID)
			assert.Equal(t, userID, comment.UserID)
			assert.Equal(t, "looks great", comment.Text)
		}).
		Return(nil)
	fx.reelRepo.On("FindByID", ctx, reelID).Return(commented, nil).Once()

	view, err := fx.service.AddComment(ctx, reelID, userID, "  looks great  ")

	require.NoError(t, err)
	require.Len(t, view.Comments, 1)
	assert.Equal(t, "looks great", view.Comments[0].Text)
	require.NotNil(t, view.Comments[0].User)
	assert.Equal(t, "someuser", view.Comments[0].User.Username)
}

func TestReelService_AddComment_RejectsEmptyText(t *testing.T) {
	fx := createTestReelService(t)

	_, err := fx.service.AddComment(context.Background(), uuid.New(), uuid.New(), "   ")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestReelService_Update_OwnershipHiddenAsNotFound(t *testing.T) {
	fx := createTestReelService(t)
	ctx := context.Background()
	reelID := uuid.New()
	ownerID := uuid.New()
	intruderID := uuid.New()

	fx.reelRepo.On("FindByID", ctx, reelID).
		Return(newTestReel(reelID, ownerID, 10), nil)

	caption := "hijacked"
	_, err := fx.service.Update(ctx, reelID, intruderID, &usecase.UpdateReelInput{
		Caption: &caption,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
	fx.reelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReelService_Update_RejectsNonPositivePrice(t *testing.T) {
	fx := createTestReelService(t)
	ctx := context.Background()
	reelID := uuid.New()
	ownerID := uuid.New()

	fx.reelRepo.On("FindByID", ctx, reelID).
		Return(newTestReel(reelID, ownerID, 10), nil)

	price := -1.0
	_, err := fx.service.Update(ctx, reelID, ownerID, &usecase.UpdateReelInput{
		Price: &price,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestReelService_Delete_Owned(t *testing.T) {
	fx := createTestReelService(t)
	ctx := context.Background()
	reelID := uuid.New()
	ownerID := uuid.New()

	fx.reelRepo.On("FindByID", ctx, reelID).
		Return(newTestReel(reelID, ownerID, 10), nil)
	fx.reelRepo.On("Delete", ctx, reelID).Return(nil)

	err := fx.service.Delete(ctx, reelID, ownerID)

	require.NoError(t, err)
	fx.reelRepo.AssertExpectations(t)
}

func TestReelService_Delete_NotOwned(t *testing.T) {
	fx := createTestReelService(t)
	ctx := context.Background()
	reelID := uuid.New()

	fx.reelRepo.On("FindByID", ctx, reelID).
		Return(newTestReel(reelID, uuid.New(), 10), nil)

	err := fx.service.Delete(ctx, reelID, uuid.New())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
	fx.reelRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
