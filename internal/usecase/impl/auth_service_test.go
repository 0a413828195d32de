package impl

import (
	"context"
	"testing"

	"vestira/internal/domain/entity"
	domainerrors "vestira/internal/domain/errors"
	"vestira/internal/domain/repository"
	mockRepo "vestira/internal/mocks/repository"
	mockSvc "vestira/internal/mocks/service"
	"vestira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	accountRepo := &mockRepo.MockAccountRepository{}
	hasher := &mockSvc.MockPasswordHasher{}
	tokenService := &mockSvc.MockTokenService{}
	txManager := &mockRepo.PassthroughTransactionManager{
		Factory: &mockRepo.StaticRepositoryFactory{Accounts: accountRepo},
	}

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByEmail", ctx, entity.KindUser, "new@example.com").
		Return(nil, repository.ErrAccountNotFound)
	fx.hasher.On("Hash", "password123").Return("hashed", nil)
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(*entity.Account)
			account.ID = uuid.New()
		}).
		Return(nil)
	fx.tokenService.On("Generate", mock.AnythingOfType("uuid.UUID"), entity.KindUser).
		Return("issued-token", nil)

	output, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Username: "newuser",
		Email:    "New@Example.com", // normalized to lowercase
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "issued-token", output.Token)
	assert.Equal(t, "new@example.com", output.Account.Email)
	assert.Equal(t, "newuser", output.Account.Username)
	assert.Equal(t, entity.KindUser.String(), output.Account.Kind)
	fx.accountRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Username: "",
		Email:    "a@b.c",
		Password: "pw",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestAuthService_RegisterUser_Duplicate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "pw123456").Return("hashed", nil)
	fx.accountRepo.On("FindByEmail", ctx, entity.KindUser, "taken@example.com").
		Return(newTestUser(uuid.New()), nil)

	_, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Username: "dupe",
		Email:    "taken@example.com",
		Password: "pw123456",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "User already exists", appErr.Message())
	fx.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_RegisterPartner_DescriptionTooLong(t *testing.T) {
	fx := createTestAuthService(t)

	long := make([]byte, 301)
	for i := range long {
		long[i] = 'x'
	}

	_, err := fx.service.RegisterPartner(context.Background(), &usecase.RegisterPartnerInput{
		Name:        "P",
		Email:       "p@example.com",
		Password:    "pw123456",
		BrandName:   "Brand",
		Description: string(long),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestAuthService_RegisterPartner_AssignsDefaultProfilePic(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByEmail", ctx, entity.KindPartner, "p@example.com").
		Return(nil, repository.ErrAccountNotFound)
	fx.hasher.On("Hash", "pw123456").Return("hashed", nil)
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	fx.tokenService.On("Generate", mock.Anything, entity.KindPartner).Return("token", nil)

	output, err := fx.service.RegisterPartner(ctx, &usecase.RegisterPartnerInput{
		Name:      "P",
		Email:     "p@example.com",
		Password:  "pw123456",
		BrandName: "Brand",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultProfilePic, output.Account.ProfilePic)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	account := newTestUser(uuid.New())
	account.PasswordHash = "stored-hash"

	fx.accountRepo.On("FindByEmail", ctx, entity.KindUser, "user@example.com").
		Return(account, nil)
	fx.hasher.On("Check", "password123", "stored-hash").Return(true)
	fx.tokenService.On("Generate", account.ID, entity.KindUser).Return("fresh-token", nil)

	output, err := fx.service.Login(ctx, entity.KindUser, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", output.Token)
	assert.Equal(t, account.ID, output.Account.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	account := newTestUser(uuid.New())
	account.PasswordHash = "stored-hash"

	fx.accountRepo.On("FindByEmail", ctx, entity.KindUser, "user@example.com").
		Return(account, nil)
	fx.hasher.On("Check", "wrong", "stored-hash").Return(false)

	_, err := fx.service.Login(ctx, entity.KindUser, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "wrong",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid credentials", appErr.Message())
}

func TestAuthService_Login_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByEmail", ctx, entity.KindUser, "ghost@example.com").
		Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.Login(ctx, entity.KindUser, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid credentials", appErr.Message())
}

func TestAuthService_RegisterThenLogin_SameIdentity(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	assignedID := uuid.New()

	fx.accountRepo.On("FindByEmail", ctx, entity.KindUser, "loop@example.com").
		Return(nil, repository.ErrAccountNotFound).Once()
	fx.hasher.On("Hash", "pw123456").Return("hash", nil)
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(*entity.Account)
			account.ID = assignedID
		}).
		Return(nil)
	fx.tokenService.On("Generate", assignedID, entity.KindUser).Return("token", nil)

	registered, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Username: "loop",
		Email:    "loop@example.com",
		Password: "pw123456",
	})
	require.NoError(t, err)

	stored := &entity.Account{
		ID:           assignedID,
		Kind:         entity.KindUser,
		Email:        "loop@example.com",
		Username:     "loop",
		PasswordHash: "hash",
	}
	fx.accountRepo.On("FindByEmail", ctx, entity.KindUser, "loop@example.com").
		Return(stored, nil)
	fx.hasher.On("Check", "pw123456", "hash").Return(true)

	loggedIn, err := fx.service.Login(ctx, entity.KindUser, &usecase.LoginInput{
		Email:    "loop@example.com",
		Password: "pw123456",
	})
	require.NoError(t, err)

	assert.Equal(t, registered.Account.ID, loggedIn.Account.ID)
}

func TestAuthService_Resolve_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	account := newTestUser(uuid.New())

	fx.tokenService.On("Validate", "valid-token").
		Return(newSessionClaims(account.ID, entity.KindUser), nil)
	fx.accountRepo.On("FindByID", ctx, account.ID).Return(account, nil)

	resolved, err := fx.service.Resolve(ctx, "valid-token")

	require.NoError(t, err)
	assert.Equal(t, account.ID, resolved.ID)
}

func TestAuthService_Resolve_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.On("Validate", "garbage").Return(nil, errors.New("bad token"))

	_, err := fx.service.Resolve(context.Background(), "garbage")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.HTTPCode())
}

func TestAuthService_Resolve_OrphanedToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.tokenService.On("Validate", "orphan").
		Return(newSessionClaims(accountID, entity.KindUser), nil)
	fx.accountRepo.On("FindByID", ctx, accountID).
		Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.Resolve(ctx, "orphan")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.HTTPCode())
}

func TestAuthService_Resolve_EmptyToken(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Resolve(context.Background(), "")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.HTTPCode())
}
