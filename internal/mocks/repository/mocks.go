// Package repository provides testify mocks for the persistence interfaces.
package repository

import (
	"context"

	"vestira/internal/domain/entity"
	"vestira/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock for repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if account := args.Get(0); account != nil {
		return account.(*entity.Account), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, kind entity.AccountKind, email string) (*entity.Account, error) {
	args := m.Called(ctx, kind, email)
	if account := args.Get(0); account != nil {
		return account.(*entity.Account), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

// MockReelRepository is a mock for repository.ReelRepository.
type MockReelRepository struct {
	mock.Mock
}

func (m *MockReelRepository) Create(ctx context.Context, reel *entity.Reel) error {
	return m.Called(ctx, reel).Error(0)
}

func (m *MockReelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reel, error) {
	args := m.Called(ctx, id)
	if reel := args.Get(0); reel != nil {
		return reel.(*entity.Reel), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReelRepository) List(ctx context.Context, offset, limit int) ([]*entity.Reel, error) {
	args := m.Called(ctx, offset, limit)
	if reels := args.Get(0); reels != nil {
		return reels.([]*entity.Reel), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReelRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReelRepository) ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]*entity.Reel, error) {
	args := m.Called(ctx, partnerID)
	if reels := args.Get(0); reels != nil {
		return reels.([]*entity.Reel), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReelRepository) ListLikedBy(ctx context.Context, accountID uuid.UUID) ([]*entity.Reel, error) {
	args := m.Called(ctx, accountID)
	if reels := args.Get(0); reels != nil {
		return reels.([]*entity.Reel), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReelRepository) ListSavedBy(ctx context.Context, accountID uuid.UUID) ([]*entity.Reel, error) {
	args := m.Called(ctx, accountID)
	if reels := args.Get(0); reels != nil {
		return reels.([]*entity.Reel), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReelRepository) AddLike(ctx context.Context, reelID, accountID uuid.UUID) error {
	return m.Called(ctx, reelID, accountID).Error(0)
}

func (m *MockReelRepository) RemoveLike(ctx context.Context, reelID, accountID uuid.UUID) error {
	return m.Called(ctx, reelID, accountID).Error(0)
}

func (m *MockReelRepository) AddSave(ctx context.Context, reelID, accountID uuid.UUID) error {
	return m.Called(ctx, reelID, accountID).Error(0)
}

func (m *MockReelRepository) RemoveSave(ctx context.Context, reelID, accountID uuid.UUID) error {
	return m.Called(ctx, reelID, accountID).Error(0)
}

func (m *MockReelRepository) AddComment(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockReelRepository) Update(ctx context.Context, reel *entity.Reel) error {
	return m.Called(ctx, reel).Error(0)
}

func (m *MockReelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockOrderRepository is a mock for repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if order := args.Get(0); order != nil {
		return order.(*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, userID)
	if orders := args.Get(0); orders != nil {
		return orders.([]*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, partnerID)
	if orders := args.Get(0); orders != nil {
		return orders.([]*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

// MockRepositoryFactory is a mock for repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func (m *MockRepositoryFactory) AccountRepo() repository.AccountRepository {
	return m.Called().Get(0).(repository.AccountRepository)
}

func (m *MockRepositoryFactory) ReelRepo() repository.ReelRepository {
	return m.Called().Get(0).(repository.ReelRepository)
}

func (m *MockRepositoryFactory) OrderRepo() repository.OrderRepository {
	return m.Called().Get(0).(repository.OrderRepository)
}

// MockTransactionManager is a mock for repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return m.Called(ctx, fn).Error(0)
}

// PassthroughTransactionManager runs the callback directly against the
// given factory, mimicking a committed transaction in tests.
type PassthroughTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (m *PassthroughTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}

// StaticRepositoryFactory hands out fixed repository instances.
type StaticRepositoryFactory struct {
	Accounts repository.AccountRepository
	Reels    repository.ReelRepository
	Orders   repository.OrderRepository
}

func (f *StaticRepositoryFactory) AccountRepo() repository.AccountRepository {
	return f.Accounts
}

func (f *StaticRepositoryFactory) ReelRepo() repository.ReelRepository {
	return f.Reels
}

func (f *StaticRepositoryFactory) OrderRepo() repository.OrderRepository {
	return f.Orders
}
