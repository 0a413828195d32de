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
	"gorm.io/gorm/clause"
)

// reelRepository implements the repository.ReelRepository interface.
type reelRepository struct {
	db *gorm.DB
}

// NewReelRepository is the constructor for reelRepository.
func NewReelRepository(db *gorm.DB) repository.ReelRepository {
	return &reelRepository{
		db: db,
	}
}

// withAssociations preloads everything a reel read needs: the owning
// partner, both membership sets, and comments with their authors in
// insertion order.
func (repo *reelRepository) withAssociations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Partner").
		Preload("Likes").
		Preload("Saves").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("reel_comments.created_at ASC")
		}).
		Preload("Comments.Author")
}

// Create persists a new reel.
func (repo *reelRepository) Create(ctx context.Context, reel *entity.Reel) error {
	reelM := fromReelDomain(reel)

	if err := repo.db.WithContext(ctx).Create(reelM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountNotFound.WrapMessage("invalid partner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reel")
	}

	reel.ID = reelM.ID
	reel.CreatedAt = reelM.CreatedAt
	reel.UpdatedAt = reelM.UpdatedAt

	return nil
}

// FindByID retrieves a single reel by its unique ID.
func (repo *reelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reel, error) {
	var reelM model.ReelModel

	if err := repo.withAssociations(ctx).
		Where("id = ?", id).
		First(&reelM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReelNotFound
		}

		return nil, errors.Wrap(err, "failed to find reel by ID")
	}

	return toReelDomain(&reelM), nil
}

// List returns one feed page ordered newest-first.
func (repo *reelRepository) List(ctx context.Context, offset, limit int) ([]*entity.Reel, error) {
	var reelModels []*model.ReelModel

	if err := repo.withAssociations(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reelModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reels")
	}

	return toReelDomains(reelModels), nil
}

// Count returns the total number of reels.
func (repo *reelRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReelModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count reels")
	}

	return count, nil
}

// ListByPartner returns all reels owned by the partner, newest-first.
func (repo *reelRepository) ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]*entity.Reel, error) {
	var reelModels []*model.ReelModel

	if err := repo.withAssociations(ctx).
		Where("partner_id = ?", partnerID).
		Order("created_at DESC").
		Find(&reelModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reels by partner")
	}

	return toReelDomains(reelModels), nil
}

// ListLikedBy returns all reels whose like set contains the account, newest-first.
func (repo *reelRepository) ListLikedBy(ctx context.Context, accountID uuid.UUID) ([]*entity.Reel, error) {
	return repo.listByMembership(ctx, "reel_likes", accountID)
}

// ListSavedBy returns all reels whose save set contains the account, newest-first.
func (repo *reelRepository) ListSavedBy(ctx context.Context, accountID uuid.UUID) ([]*entity.Reel, error) {
	return repo.listByMembership(ctx, "reel_saves", accountID)
}

func (repo *reelRepository) listByMembership(ctx context.Context, table string, accountID uuid.UUID) ([]*entity.Reel, error) {
	var reelModels []*model.ReelModel

	if err := repo.withAssociations(ctx).
		Joins("JOIN "+table+" ON "+table+".reel_id = reels.id").
		Where(table+".account_id = ?", accountID).
		Order("reels.created_at DESC").
		Find(&reelModels).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list reels by %s membership", table)
	}

	return toReelDomains(reelModels), nil
}

// AddLike inserts the account into the reel's like set. Re-adding an
// existing member is a no-op thanks to the composite primary key.
func (repo *reelRepository) AddLike(ctx context.Context, reelID, accountID uuid.UUID) error {
	like := &model.ReelLikeModel{ReelID: reelID, AccountID: accountID}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrReelNotFound
		}

		return errors.Wrap(err, "failed to add like")
	}

	return nil
}

// RemoveLike removes the account from the reel's like set.
func (repo *reelRepository) RemoveLike(ctx context.Context, reelID, accountID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("reel_id = ? AND account_id = ?", reelID, accountID).
		Delete(&model.ReelLikeModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove like")
	}

	return nil
}

// AddSave inserts the account into the reel's save set.
func (repo *reelRepository) AddSave(ctx context.Context, reelID, accountID uuid.UUID) error {
	save := &model.ReelSaveModel{ReelID: reelID, AccountID: accountID}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(save).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrReelNotFound
		}

		return errors.Wrap(err, "failed to add save")
	}

	return nil
}

// RemoveSave removes the account from the reel's save set.
func (repo *reelRepository) RemoveSave(ctx context.Context, reelID, accountID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("reel_id = ? AND account_id = ?", reelID, accountID).
		Delete(&model.ReelSaveModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove save")
	}

	return nil
}

// AddComment appends a comment to the reel's ordered comment sequence.
func (repo *reelRepository) AddComment(ctx context.Context, comment *entity.Comment) error {
	commentM := &model.ReelCommentModel{
		ReelID: comment.ReelID,
		UserID: comment.UserID,
		Text:   comment.Text,
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrReelNotFound
		}

		return errors.Wrap(err, "failed to add comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// Update persists caption/price changes on an existing reel.
func (repo *reelRepository) Update(ctx context.Context, reel *entity.Reel) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReelModel{}).
		Where("id = ?", reel.ID).
		Updates(map[string]any{
			"caption": reel.Caption,
			"price":   reel.Price,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update reel")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReelNotFound
	}

	return nil
}

// Delete removes the reel permanently. Membership rows and comments cascade;
// orders keep a NULL reel reference.
func (repo *reelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReelModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete reel")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReelNotFound
	}

	return nil
}

func toReelDomain(reelM *model.ReelModel) *entity.Reel {
	reel := &entity.Reel{
		ID:        reelM.ID,
		PartnerID: reelM.PartnerID,
		VideoURL:  reelM.VideoURL,
		Caption:   reelM.Caption,
		Price:     reelM.Price,
		CreatedAt: reelM.CreatedAt,
		UpdatedAt: reelM.UpdatedAt,
	}

	if reelM.Partner != nil {
		reel.Partner = toAccountDomain(reelM.Partner)
	}

	reel.Likes = make([]uuid.UUID, 0, len(reelM.Likes))
	for _, like := range reelM.Likes {
		reel.Likes = append(reel.Likes, like.AccountID)
	}

	reel.Saves = make([]uuid.UUID, 0, len(reelM.Saves))
	for _, save := range reelM.Saves {
		reel.Saves = append(reel.Saves, save.AccountID)
	}

	reel.Comments = make([]*entity.Comment, 0, len(reelM.Comments))
	for _, commentM := range reelM.Comments {
		comment := &entity.Comment{
			ID:        commentM.ID,
			ReelID:    commentM.ReelID,
			UserID:    commentM.UserID,
			Text:      commentM.Text,
			CreatedAt: commentM.CreatedAt,
		}
		if commentM.Author != nil {
			comment.Author = toAccountDomain(commentM.Author)
		}
		reel.Comments = append(reel.Comments, comment)
	}

	return reel
}

func toReelDomains(reelModels []*model.ReelModel) []*entity.Reel {
	reels := make([]*entity.Reel, 0, len(reelModels))
	for _, reelM := range reelModels {
		reels = append(reels, toReelDomain(reelM))
	}

	return reels
}

func fromReelDomain(reel *entity.Reel) *model.ReelModel {
	return &model.ReelModel{
		ID:        reel.ID,
		PartnerID: reel.PartnerID,
		VideoURL:  reel.VideoURL,
		Caption:   reel.Caption,
		Price:     reel.Price,
	}
}
