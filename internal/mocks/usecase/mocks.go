// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"

	"vestira/internal/domain/entity"
	"vestira/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock for usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if output := args.Get(0); output != nil {
		return output.(*usecase.AuthOutput), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) RegisterPartner(ctx context.Context, input *usecase.RegisterPartnerInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if output := args.Get(0); output != nil {
		return output.(*usecase.AuthOutput), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, kind entity.AccountKind, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, kind, input)
	if output := args.Get(0); output != nil {
		return output.(*usecase.AuthOutput), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Resolve(ctx context.Context, token string) (*entity.Account, error) {
	args := m.Called(ctx, token)
	if account := args.Get(0); account != nil {
		return account.(*entity.Account), args.Error(1)
	}

	return nil, args.Error(1)
}
