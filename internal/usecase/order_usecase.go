package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CustomerInfoInput is the buyer contact snapshot submitted with an order.
type CustomerInfoInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
}

// PlaceOrderInput defines the data required to place an order. TotalAmount
// is client-computed and must match reel.price * quantity within the
// accepted tolerance.
type PlaceOrderInput struct {
	ReelID       string            `json:"reelId" validate:"required"`
	Quantity     int               `json:"quantity" validate:"required,min=1"`
	CustomerInfo CustomerInfoInput `json:"customerInfo"`
	Notes        string            `json:"notes"`
	TotalAmount  float64           `json:"totalAmount" validate:"required"`
}

// OrderUsecase defines the order ledger operations.
type OrderUsecase interface {
	// Place creates a pending order after price-consistency validation.
	Place(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*OrderView, error)

	// ListForUser returns the user's own orders, newest-first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)

	// ListForPartner returns orders on the partner's reels, newest-first.
	ListForPartner(ctx context.Context, partnerID uuid.UUID) ([]*OrderView, error)

	// UpdateStatus moves the order along the fulfillment state machine.
	// Only the partner owning the order's reel may call this.
	UpdateStatus(ctx context.Context, orderID, partnerID uuid.UUID, status string) (*OrderView, error)
}
