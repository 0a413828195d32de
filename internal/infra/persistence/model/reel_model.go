package model

import (
	"time"

	"github.com/google/uuid"
)

// ReelModel mirrors the 'reels' table.
type ReelModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PartnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	VideoURL  string    `gorm:"type:varchar(512);not null"`
	Caption   string    `gorm:"type:text"`
	Price     float64   `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Partner  *AccountModel      `gorm:"foreignKey:PartnerID"`
	Likes    []ReelLikeModel    `gorm:"foreignKey:ReelID;constraint:OnDelete:CASCADE"`
	Saves    []ReelSaveModel    `gorm:"foreignKey:ReelID;constraint:OnDelete:CASCADE"`
	Comments []ReelCommentModel `gorm:"foreignKey:ReelID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReelModel) TableName() string {
	return "reels"
}

// ReelLikeModel mirrors the 'reel_likes' membership table. The composite
// primary key makes double-insertion impossible at the storage level.
type ReelLikeModel struct {
	ReelID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReelLikeModel) TableName() string {
	return "reel_likes"
}

// ReelSaveModel mirrors the 'reel_saves' membership table.
type ReelSaveModel struct {
	ReelID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReelSaveModel) TableName() string {
	return "reel_saves"
}

// ReelCommentModel mirrors the 'reel_comments' table. Comments are ordered
// by creation time, oldest first.
type ReelCommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ReelID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time

	Author *AccountModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ReelCommentModel) TableName() string {
	return "reel_comments"
}
