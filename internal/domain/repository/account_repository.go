// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vestira/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID, regardless of kind.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves the account holding the email within the given kind.
	FindByEmail(ctx context.Context, kind entity.AccountKind, email string) (*entity.Account, error)

	// Create persists a new account.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account's mutable fields.
	Update(ctx context.Context, account *entity.Account) error
}
