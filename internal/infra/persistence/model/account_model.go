// Package model holds the GORM-specific structs mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. End users and partners share
// the table, discriminated by the kind column. Email is unique per kind,
// so the same address may exist once as a user and once as a partner.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Kind         string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_accounts_kind_email"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_kind_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`

	Username    string `gorm:"type:varchar(100)"`
	Name        string `gorm:"type:varchar(100)"`
	BrandName   string `gorm:"type:varchar(100)"`
	Description string `gorm:"type:varchar(300)"`
	ProfilePic  string `gorm:"type:varchar(512)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
