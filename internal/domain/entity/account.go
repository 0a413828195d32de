package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultProfilePic is assigned to partners that register without an avatar.
const DefaultProfilePic = "https://i.ibb.co/2FsfXqM/default-avatar.png"

// Account is the single identity record for both end users and partners,
// discriminated by Kind. Email is unique within a kind; a user and a
// partner may hold the same email.
type Account struct {
	ID           uuid.UUID   // Global unique identifier for the account.
	Kind         AccountKind // Variant discriminant: user or partner.
	Email        string      // Login identifier, lowercased.
	PasswordHash string      // Salted bcrypt hash. Never serialized.

	// End-user fields. Empty for partners.
	Username string

	// Partner fields. Empty for end users.
	Name        string // Display name.
	BrandName   string
	Description string // Free text, at most 300 characters.
	ProfilePic  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPartner reports whether the account is a partner.
func (a *Account) IsPartner() bool {
	return a.Kind == KindPartner
}

// IsUser reports whether the account is an end user.
func (a *Account) IsUser() bool {
	return a.Kind == KindUser
}
