package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// orderTransitions is the enforced fulfillment state machine. completed
// and cancelled are terminal; completed is reached from delivered and
// marks the order as revenue-bearing.
var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusConfirmed, StatusProcessing, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusShipped, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {StatusCompleted},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing,
		StatusShipped, StatusDelivered, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the state machine permits moving from
// the current status to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// CustomerInfo is a snapshot of the buyer's contact details captured at
// order time. It does not reference the account record.
type CustomerInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// PriceTolerance is the maximum accepted difference between the submitted
// total and reel.Price * quantity at order creation.
const PriceTolerance = 0.01

// Order is one purchase intent against one reel by one end user.
// Orders are never deleted. ReelID is nil once the referenced reel has
// been removed; read paths must treat a missing reel defensively.
type Order struct {
	ID     uuid.UUID
	UserID uuid.UUID

	ReelID *uuid.UUID
	Reel   *Reel // nil when the reel has been deleted.

	Quantity     int
	CustomerInfo CustomerInfo
	Notes        string
	TotalAmount  float64
	Status       OrderStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
