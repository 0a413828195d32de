// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"
	"time"

	"vestira/internal/domain/entity"
	"vestira/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock for service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService is a mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Generate(accountID uuid.UUID, kind entity.AccountKind) (string, error) {
	args := m.Called(accountID, kind)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*service.SessionClaims, error) {
	args := m.Called(tokenString)
	if claims := args.Get(0); claims != nil {
		return claims.(*service.SessionClaims), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) SessionDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// MockMediaStorage is a mock for service.MediaStorage.
type MockMediaStorage struct {
	mock.Mock
}

func (m *MockMediaStorage) UploadVideo(ctx context.Context, video string, fileName string) (string, error) {
	args := m.Called(ctx, video, fileName)

	return args.String(0), args.Error(1)
}
