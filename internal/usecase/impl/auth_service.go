// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "vestira/internal/delivery/context"
	"vestira/internal/domain/entity"
	domainerrors "vestira/internal/domain/errors"
	"vestira/internal/domain/repository"
	"vestira/internal/domain/service"
	"vestira/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates an end-user account and issues a session token.
func (srv *authService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)
	email := normalizeEmail(input.Email)

	if username == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidation.WithMessage("All fields are required")
	}

	account := &entity.Account{
		Kind:     entity.KindUser,
		Email:    email,
		Username: username,
	}

	return srv.register(ctx, account, input.Password, "User already exists")
}

// RegisterPartner creates a partner account and issues a session token.
func (srv *authService) RegisterPartner(ctx context.Context, input *usecase.RegisterPartnerInput) (*usecase.AuthOutput, error) {
	name := strings.TrimSpace(input.Name)
	brandName := strings.TrimSpace(input.BrandName)
	email := normalizeEmail(input.Email)

	if name == "" || email == "" || input.Password == "" || brandName == "" {
		return nil, domainerrors.ErrValidation.WithMessage("Name, email, password, and brand name are required")
	}
	if len(input.Description) > 300 {
		return nil, domainerrors.ErrValidation.WithMessage("Description must be at most 300 characters")
	}

	account := &entity.Account{
		Kind:        entity.KindPartner,
		Email:       email,
		Name:        name,
		BrandName:   brandName,
		Description: input.Description,
		ProfilePic:  entity.DefaultProfilePic,
	}

	return srv.register(ctx, account, input.Password, "Partner already exists")
}

// register runs the duplicate check and insert in one transaction so two
// concurrent registrations for the same email cannot both pass the probe.
func (srv *authService) register(ctx context.Context, account *entity.Account, password, duplicateMessage string) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("kind", account.Kind), slog.String("email", account.Email))

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("kind", account.Kind), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}
	account.PasswordHash = hash

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, findErr := accountRepo.FindByEmail(ctx, account.Kind, account.Email)
		if findErr == nil {
			return domainerrors.ErrDuplicateAccount.WithMessage(duplicateMessage)
		}
		if !errors.Is(findErr, repository.ErrAccountNotFound) {
			return errors.Wrap(findErr, "failed to probe for existing account")
		}

		return accountRepo.Create(ctx, account)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.Any("kind", account.Kind), slog.String("email", account.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	token, err := srv.tokenService.Generate(account.ID, account.Kind)
	if err != nil {
		srv.log(ctx).Error("Failed to generate session token", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("kind", account.Kind), slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{
		Token:   token,
		Account: usecase.NewAccountView(account),
	}, nil
}

// Login verifies credentials for the given account kind and issues a fresh session token.
func (srv *authService) Login(ctx context.Context, kind entity.AccountKind, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidation.WithMessage("All fields are required")
	}

	srv.log(ctx).Debug("Starting login", slog.Any("kind", kind), slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, kind, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Unknown email is reported identically to a wrong password.
			srv.log(ctx).Warn("Login failed", slog.Any("kind", kind), slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.Any("kind", kind), slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Generate(account.ID, account.Kind)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Debug("Login successful", slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{
		Token:   token,
		Account: usecase.NewAccountView(account),
	}, nil
}

// Resolve validates a session token and loads its account in one lookup.
func (srv *authService) Resolve(ctx context.Context, token string) (*entity.Account, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated.WithMessage("Not authorized, no token")
	}

	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithMessage("Not authorized, invalid token")
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// The account behind a still-valid token was deleted.
			return nil, domainerrors.ErrUnauthenticated.WithMessage("Not authorized, account not found")
		}

		return nil, errors.Wrap(err, "failed to load account for session")
	}

	return account, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
