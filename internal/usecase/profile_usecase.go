package usecase

import (
	"context"

	"github.com/google/uuid"
)

// UserProfileOutput bundles the end user's identity with their liked and
// saved reels, newest-first.
type UserProfileOutput struct {
	User       *AccountView `json:"user"`
	LikedReels []*ReelView  `json:"likedReels"`
	SavedReels []*ReelView  `json:"savedReels"`
}

// UpdatePartnerProfileInput carries the partner-editable profile fields;
// nil means unchanged.
type UpdatePartnerProfileInput struct {
	Name        *string `json:"name"`
	BrandName   *string `json:"brandName"`
	Description *string `json:"description" validate:"omitempty,max=300"`
}

// AnalyticsOutput is the on-demand partner aggregate. Revenue counts only
// orders in the completed state.
type AnalyticsOutput struct {
	TotalReels   int          `json:"totalReels"`
	TotalLikes   int          `json:"totalLikes"`
	TotalSaves   int          `json:"totalSaves"`
	TotalOrders  int          `json:"totalOrders"`
	TotalRevenue float64      `json:"totalRevenue"`
	RecentOrders []*OrderView `json:"recentOrders"`
}

// ProfileUsecase defines the self-service profile and analytics operations.
type ProfileUsecase interface {
	// UserProfile returns the end user's identity plus liked/saved reels.
	UserProfile(ctx context.Context, userID uuid.UUID) (*UserProfileOutput, error)

	// PartnerProfile returns the partner's own public projection.
	PartnerProfile(ctx context.Context, partnerID uuid.UUID) (*AccountView, error)

	// UpdatePartnerProfile edits the partner's display fields.
	UpdatePartnerProfile(ctx context.Context, partnerID uuid.UUID, input *UpdatePartnerProfileInput) (*AccountView, error)

	// Analytics computes the partner aggregate on demand, with the five
	// most recent orders attached.
	Analytics(ctx context.Context, partnerID uuid.UUID) (*AnalyticsOutput, error)
}
