// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vestira/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register an end user.
type RegisterUserInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterPartnerInput defines the data required to register a partner.
type RegisterPartnerInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	BrandName   string `json:"brandName" validate:"required"`
	Description string `json:"description" validate:"omitempty,max=300"`
}

// LoginInput defines the data required to log in; the account kind comes
// from the route, not the body.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns a fresh session token and the public account
// projection after a successful register or login.
type AuthOutput struct {
	Token   string
	Account *AccountView
}

// AuthUsecase defines the identity and session operations.
// This is the contract the delivery layer (API handlers, middleware) depends on.
type AuthUsecase interface {
	// RegisterUser creates an end-user account and issues a session token.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*AuthOutput, error)

	// RegisterPartner creates a partner account and issues a session token.
	RegisterPartner(ctx context.Context, input *RegisterPartnerInput) (*AuthOutput, error)

	// Login verifies credentials for the given account kind and issues a
	// fresh session token.
	Login(ctx context.Context, kind entity.AccountKind, input *LoginInput) (*AuthOutput, error)

	// Resolve validates a session token and loads its account in a single
	// indexed lookup. Absent, invalid, expired and orphaned tokens all
	// fail with the unauthenticated error.
	Resolve(ctx context.Context, token string) (*entity.Account, error)
}
