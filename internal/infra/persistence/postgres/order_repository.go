package postgres

import (
	"context"

	"vestira/internal/domain/entity"
	domainerrors "vestira/internal/domain/errors"
	"vestira/internal/domain/repository"
	"vestira/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// withReel preloads the order's reel and the reel's owning partner. Orders
// whose reel was deleted load with a nil association.
func (repo *orderRepository) withReel(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Reel").
		Preload("Reel.Partner")
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrReelNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves a single order with its reel loaded when it still exists.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.withReel(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser returns all orders placed by the user, newest-first. Orders
// whose reel was deleted carry a nil reel.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.withReel(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return toOrderDomains(orderModels), nil
}

// ListByPartner returns all orders whose referenced reel is owned by the
// partner, newest-first. The inner join drops orders with deleted reels.
func (repo *orderRepository) ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.withReel(ctx).
		Joins("JOIN reels ON reels.id = orders.reel_id").
		Where("reels.partner_id = ?", partnerID).
		Order("orders.created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by partner")
	}

	return toOrderDomains(orderModels), nil
}

// UpdateStatus sets the order's status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:       orderM.ID,
		UserID:   orderM.UserID,
		ReelID:   orderM.ReelID,
		Quantity: orderM.Quantity,
		CustomerInfo: entity.CustomerInfo{
			Name:    orderM.CustomerName,
			Email:   orderM.CustomerEmail,
			Phone:   orderM.CustomerPhone,
			Address: orderM.CustomerAddress,
		},
		Notes:       orderM.Notes,
		TotalAmount: orderM.TotalAmount,
		Status:      entity.OrderStatus(orderM.Status),
		CreatedAt:   orderM.CreatedAt,
		UpdatedAt:   orderM.UpdatedAt,
	}

	if orderM.Reel != nil {
		order.Reel = toReelDomain(orderM.Reel)
	}

	return order
}

func toOrderDomains(orderModels []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

func fromOrderDomain(order *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:              order.ID,
		UserID:          order.UserID,
		ReelID:          order.ReelID,
		Quantity:        order.Quantity,
		Notes:           order.Notes,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status.String(),
		CustomerName:    order.CustomerInfo.Name,
		CustomerEmail:   order.CustomerInfo.Email,
		CustomerPhone:   order.CustomerInfo.Phone,
		CustomerAddress: order.CustomerInfo.Address,
	}
}
