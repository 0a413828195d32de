package repository

import (
	"context"
	"errors"

	"vestira/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Orders are append-only apart from their status field.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with its reel (and the reel's
	// partner) loaded when the reel still exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser returns all orders placed by the user, newest-first.
	// Orders whose reel was deleted carry a nil reel.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListByPartner returns all orders whose referenced reel is owned by
	// the partner, newest-first. Orders whose reel was deleted are excluded.
	ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus sets the order's status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
