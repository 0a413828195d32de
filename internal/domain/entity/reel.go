package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reel is a short video listing with a price, owned by exactly one partner.
// Ownership is immutable after creation. Likes and saves are membership
// sets of end-user ids; comments form an ordered sequence.
type Reel struct {
	ID        uuid.UUID
	PartnerID uuid.UUID
	Partner   *Account // Owning partner's public fields, loaded on reads.

	VideoURL string
	Caption  string
	Price    float64 // Always > 0.

	Likes    []uuid.UUID // Account ids that liked the reel. Order irrelevant.
	Saves    []uuid.UUID // Account ids that saved the reel.
	Comments []*Comment  // Ordered oldest-first.

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Comment is one entry in a reel's embedded comment sequence.
type Comment struct {
	ID        uuid.UUID
	ReelID    uuid.UUID
	UserID    uuid.UUID
	Author    *Account // Comment author's public fields, loaded on reads.
	Text      string
	CreatedAt time.Time
}

// LikedBy reports whether the given account id is in the like set.
func (r *Reel) LikedBy(accountID uuid.UUID) bool {
	return containsID(r.Likes, accountID)
}

// SavedBy reports whether the given account id is in the save set.
func (r *Reel) SavedBy(accountID uuid.UUID) bool {
	return containsID(r.Saves, accountID)
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}

	return false
}
