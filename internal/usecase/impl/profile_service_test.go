package impl

import (
	"context"
	"strings"
	"testing"

	"vestira/internal/domain/entity"
	domainerrors "vestira/internal/domain/errors"
	mockRepo "vestira/internal/mocks/repository"
	"vestira/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	accountRepo *mockRepo.MockAccountRepository
	reelRepo    *mockRepo.MockReelRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	t.Helper()

	accountRepo := &mockRepo.MockAccountRepository{}
	reelRepo := &mockRepo.MockReelRepository{}
	orderRepo := &mockRepo.MockOrderRepository{}

	service := NewProfileService(ProfileServiceParams{
		AccountRepo: accountRepo,
		ReelRepo:    reelRepo,
		OrderRepo:   orderRepo,
		Logger:      newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		reelRepo:    reelRepo,
		orderRepo:   orderRepo,
	}
}

func TestProfileService_UserProfile_AggregatesLikedAndSaved(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	partnerID := uuid.New()

	liked := []*entity.Reel{newTestReel(uuid.New(), partnerID, 10)}
	saved := []*entity.Reel{
		newTestReel(uuid.New(), partnerID, 12),
		newTestReel(uuid.New(), partnerID, 15),
	}

	fx.accountRepo.On("FindByID", ctx, userID).Return(newTestUser(userID), nil)
	fx.reelRepo.On("ListLikedBy", ctx, userID).Return(liked, nil)
	fx.reelRepo.On("ListSavedBy", ctx, userID).Return(saved, nil)

	output, err := fx.service.UserProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	require.Len(t, output.LikedReels, 1)
	require.Len(t, output.SavedReels, 2)
	assert.Equal(t, liked[0].ID, output.LikedReels[0].ID)
}

func TestProfileService_UserProfile_RejectsPartnerAccount(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	partnerID := uuid.New()

	fx.accountRepo.On("FindByID", ctx, partnerID).Return(newTestPartner(partnerID), nil)

	_, err := fx.service.UserProfile(ctx, partnerID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
	fx.reelRepo.AssertNotCalled(t, "ListLikedBy", mock.Anything, mock.Anything)
}

func TestProfileService_PartnerProfile_RejectsUserAccount(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.accountRepo.On("FindByID", ctx, userID).Return(newTestUser(userID), nil)

	_, err := fx.service.PartnerProfile(ctx, userID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}

func TestProfileService_UpdatePartnerProfile_EditsFields(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	partnerID := uuid.New()

	fx.accountRepo.On("FindByID", ctx, partnerID).Return(newTestPartner(partnerID), nil)
	fx.accountRepo.On("Update", ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	name := "  New Name  "
	description := "handmade streetwear"
	view, err := fx.service.UpdatePartnerProfile(ctx, partnerID, &usecase.UpdatePartnerProfileInput{
		Name:        &name,
		Description: &description,
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", view.Name)
	assert.Equal(t, "handmade streetwear", view.Description)
	assert.Equal(t, "Brand Co", view.BrandName, "untouched fields keep their value")
}

func TestProfileService_UpdatePartnerProfile_RejectsEmptyName(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	partnerID := uuid.New()

	fx.accountRepo.On("FindByID", ctx, partnerID).Return(newTestPartner(partnerID), nil)

	empty := "   "
	_, err := fx.service.UpdatePartnerProfile(ctx, partnerID, &usecase.UpdatePartnerProfileInput{
		Name: &empty,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	fx.accountRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProfileService_UpdatePartnerProfile_RejectsLongDescription(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	partnerID := uuid.New()

	fx.accountRepo.On("FindByID", ctx, partnerID).Return(newTestPartner(partnerID), nil)

	long := strings.Repeat("x", 301)
	_, err := fx.service.UpdatePartnerProfile(ctx, partnerID, &usecase.UpdatePartnerProfileInput{
		Description: &long,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestProfileService_Analytics(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	partnerID := uuid.New()

	first := newTestReel(uuid.New(), partnerID, 10)
	first.Likes = []uuid.UUID{uuid.New(), uuid.New()}
	first.Saves = []uuid.UUID{uuid.New()}
	second := newTestReel(uuid.New(), partnerID, 20)
	second.Likes = []uuid.UUID{uuid.New()}

	orders := make([]*entity.Order, 7)
	for i := range orders {
		orders[i] = &entity.Order{ID: uuid.New(), Status: entity.StatusPending, TotalAmount: 10}
	}
	orders[0].Status = entity.StatusCompleted
	orders[0].TotalAmount = 30
	orders[3].Status = entity.StatusCompleted
	orders[3].TotalAmount = 12.5

	fx.accountRepo.On("FindByID", ctx, partnerID).Return(newTestPartner(partnerID), nil)
	fx.reelRepo.On("ListByPartner", ctx, partnerID).Return([]*entity.Reel{first, second}, nil)
	fx.orderRepo.On("ListByPartner", ctx, partnerID).Return(orders, nil)

	output, err := fx.service.Analytics(ctx, partnerID)

	require.NoError(t, err)
	assert.Equal(t, 2, output.TotalReels)
	assert.Equal(t, 3, output.TotalLikes)
	assert.Equal(t, 1, output.TotalSaves)
	assert.Equal(t, 7, output.TotalOrders)
	assert.Equal(t, 42.5, output.TotalRevenue, "only completed orders count toward revenue")
	require.Len(t, output.RecentOrders, 5)
	assert.Equal(t, orders[0].ID, output.RecentOrders[0].ID)
}

func TestProfileService_Analytics_EmptyPartner(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	partnerID := uuid.New()

	fx.accountRepo.On("FindByID", ctx, partnerID).Return(newTestPartner(partnerID), nil)
	fx.reelRepo.On("ListByPartner", ctx, partnerID).Return([]*entity.Reel{}, nil)
	fx.orderRepo.On("ListByPartner", ctx, partnerID).Return([]*entity.Order{}, nil)

	output, err := fx.service.Analytics(ctx, partnerID)

	require.NoError(t, err)
	assert.Zero(t, output.TotalReels)
	assert.Zero(t, output.TotalRevenue)
	assert.Empty(t, output.RecentOrders)
}
