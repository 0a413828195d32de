package repository

import (
	"context"
	"errors"

	"vestira/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReelNotFound is a domain-specific error returned when a reel is not found.
var ErrReelNotFound = errors.New("reel not found")

// ReelRepository defines the standard operations for reel persistence,
// including the embedded like/save membership sets and comment sequence.
// Reels returned by read methods carry their partner, membership sets and
// comments (with authors) loaded.
type ReelRepository interface {
	// Create persists a new reel.
	Create(ctx context.Context, reel *entity.Reel) error

	// FindByID retrieves a single reel by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reel, error)

	// List returns one feed page ordered newest-first.
	List(ctx context.Context, offset, limit int) ([]*entity.Reel, error)

	// Count returns the total number of reels.
	Count(ctx context.Context) (int64, error)

	// ListByPartner returns all reels owned by the partner, newest-first.
	ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]*entity.Reel, error)

	// ListLikedBy returns all reels whose like set contains the account, newest-first.
	ListLikedBy(ctx context.Context, accountID uuid.UUID) ([]*entity.Reel, error)

	// ListSavedBy returns all reels whose save set contains the account, newest-first.
	ListSavedBy(ctx context.Context, accountID uuid.UUID) ([]*entity.Reel, error)

	// AddLike inserts the account into the reel's like set.
	AddLike(ctx context.Context, reelID, accountID uuid.UUID) error

	// RemoveLike removes the account from the reel's like set.
	RemoveLike(ctx context.Context, reelID, accountID uuid.UUID) error

	// AddSave inserts the account into the reel's save set.
	AddSave(ctx context.Context, reelID, accountID uuid.UUID) error

	// RemoveSave removes the account from the reel's save set.
	RemoveSave(ctx context.Context, reelID, accountID uuid.UUID) error

	// AddComment appends a comment to the reel's ordered comment sequence.
	AddComment(ctx context.Context, comment *entity.Comment) error

	// Update persists caption/price changes on an existing reel.
	Update(ctx context.Context, reel *entity.Reel) error

	// Delete removes the reel permanently. Orders referencing it keep a
	// nil reel reference; they are not cascaded.
	Delete(ctx context.Context, id uuid.UUID) error
}
