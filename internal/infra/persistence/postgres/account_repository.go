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

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// FindByID retrieves a single account by its unique ID, regardless of kind.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by ID")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves the account holding the email within the given kind.
func (repo *accountRepository) FindByEmail(ctx context.Context, kind entity.AccountKind, email string) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("kind = ? AND email = ?", kind.String(), email).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// The (kind, email) unique index backs the registration probe
		// against concurrent duplicates.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateAccount
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies an existing account's mutable fields.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"name":        account.Name,
			"brand_name":  account.BrandName,
			"description": account.Description,
			"profile_pic": account.ProfilePic,
			"username":    account.Username,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update account")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func toAccountDomain(accountM *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:           accountM.ID,
		Kind:         entity.AccountKind(accountM.Kind),
		Email:        accountM.Email,
		PasswordHash: accountM.PasswordHash,
		Username:     accountM.Username,
		Name:         accountM.Name,
		BrandName:    accountM.BrandName,
		Description:  accountM.Description,
		ProfilePic:   accountM.ProfilePic,
		CreatedAt:    accountM.CreatedAt,
		UpdatedAt:    accountM.UpdatedAt,
	}
}

func fromAccountDomain(account *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           account.ID,
		Kind:         account.Kind.String(),
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Username:     account.Username,
		Name:         account.Name,
		BrandName:    account.BrandName,
		Description:  account.Description,
		ProfilePic:   account.ProfilePic,
	}
}
