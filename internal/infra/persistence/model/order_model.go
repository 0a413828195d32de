package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. ReelID is nullable: deleting a
// reel sets it to NULL instead of cascading, so the purchase record and
// its amount survive.
type OrderModel struct {
	ID     uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReelID *uuid.UUID `gorm:"type:uuid;index"`

	Quantity    int     `gorm:"not null"`
	Notes       string  `gorm:"type:text"`
	TotalAmount float64 `gorm:"type:decimal(12,2);not null"`
	Status      string  `gorm:"type:varchar(16);not null;default:'pending'"`

	// Buyer contact snapshot captured at order time.
	CustomerName    string `gorm:"type:varchar(100);not null"`
	CustomerEmail   string `gorm:"type:varchar(255);not null"`
	CustomerPhone   string `gorm:"type:varchar(32);not null"`
	CustomerAddress string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Reel *ReelModel `gorm:"foreignKey:ReelID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
