package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"namdo/internal/models/db_models"
)

type FavoriteRepository interface {
	ListByAccountId(ctx context.Context, accountID string) ([]db_models.Favorite, error)
	Insert(ctx context.Context, accountID string, favorite *db_models.Favorite) error
	DeleteByAccountIdAndName(ctx context.Context, accountID string, name string) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) ListByAccountId(ctx context.Context, accountID string) ([]db_models.Favorite, error) {
	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return nil, err
	}

	var favorites []db_models.Favorite
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountUUID).
		Order("created_at ASC").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) Insert(ctx context.Context, accountID string, favorite *db_models.Favorite) error {
	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return err
	}
	favorite.AccountID = accountUUID

	// Saving the same name twice is a no-op rather than an error.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favorite).Error
}

func (r *favoriteRepository) DeleteByAccountIdAndName(ctx context.Context, accountID string, name string) (bool, error) {
	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return false, err
	}

	// Hard delete. A soft-deleted row would keep holding the
	// (account_id, name) unique index, turning a later re-add into a
	// silent ON CONFLICT no-op.
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("account_id = ? AND name = ?", accountUUID, name).
		Delete(&db_models.Favorite{})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
