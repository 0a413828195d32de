package usecase

import (
	"context"

	"github.com/google/uuid"
)

// UploadReelInput defines the data required to create a reel. Video is a
// base64 data URI (or URL) handed to the media storage collaborator.
type UploadReelInput struct {
	Video   string  `json:"video" validate:"required"`
	Caption string  `json:"caption"`
	Price   float64 `json:"price" validate:"required,gt=0"`
}

// UpdateReelInput carries the partner-editable fields; nil means unchanged.
type UpdateReelInput struct {
	Caption *string  `json:"caption"`
	Price   *float64 `json:"price"`
}

// FeedInput carries the pagination query. Non-positive values fall back
// to page 1 / limit 10.
type FeedInput struct {
	Page  int
	Limit int
}

// FeedOutput is one feed page plus pagination metadata.
type FeedOutput struct {
	TotalReels  int64       `json:"totalReels"`
	CurrentPage int         `json:"currentPage"`
	TotalPages  int64       `json:"totalPages"`
	Reels       []*ReelView `json:"reels"`
}

// ReelUsecase defines the catalog operations over reels and their social
// annotations.
type ReelUsecase interface {
	// Upload stores the video via the media collaborator and creates the
	// reel owned by the partner.
	Upload(ctx context.Context, partnerID uuid.UUID, input *UploadReelInput) (*ReelView, error)

	// Feed returns one page of reels, newest-first. viewerID may be zero
	// for anonymous requests.
	Feed(ctx context.Context, input *FeedInput, viewerID uuid.UUID) (*FeedOutput, error)

	// ListByPartner returns the partner's own reels, newest-first.
	ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]*ReelView, error)

	// ToggleLike flips the account's membership in the reel's like set.
	ToggleLike(ctx context.Context, reelID, accountID uuid.UUID) (*ReelView, error)

	// ToggleSave flips the account's membership in the reel's save set.
	ToggleSave(ctx context.Context, reelID, accountID uuid.UUID) (*ReelView, error)

	// AddComment appends a comment by the user to the reel.
	AddComment(ctx context.Context, reelID, userID uuid.UUID, text string) (*ReelView, error)

	// Update edits caption/price. Fails with not-found when the reel does
	// not exist or is not owned by the partner.
	Update(ctx context.Context, reelID, partnerID uuid.UUID, input *UpdateReelInput) (*ReelView, error)

	// Delete removes the reel permanently under the same ownership rule.
	Delete(ctx context.Context, reelID, partnerID uuid.UUID) error
}
