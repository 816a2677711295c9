package services

import (
	"context"
	"strings"

	"namdo/internal/models/db_models"
	"namdo/internal/models/request_models"
	"namdo/internal/models/response_models"
	"namdo/internal/repositories"
	"namdo/pkg/utils"
)

type FavoriteServiceInterface interface {
	ListFavorites(ctx context.Context, accountID string) ([]response_models.FavoriteResponse, error)
	FavoriteNames(ctx context.Context, accountID string) ([]string, error)
	AddFavorite(ctx context.Context, accountID string, req request_models.AddFavoriteRequest) error
	RemoveFavorite(ctx context.Context, accountID string, name string) error
}

type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository) FavoriteServiceInterface {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
	}
}

func (f *FavoriteService) ListFavorites(ctx context.Context, accountID string) ([]response_models.FavoriteResponse, error) {
	favorites, err := f.favoriteRepo.ListByAccountId(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.FavoriteResponse, 0, len(favorites))
	for _, fav := range favorites {
		out = append(out, response_models.FavoriteResponse{
			Name: fav.Name,
			Addr: fav.Addr,
			Kind: fav.Kind,
		})
	}
	return out, nil
}

func (f *FavoriteService) FavoriteNames(ctx context.Context, accountID string) ([]string, error) {
	favorites, err := f.favoriteRepo.ListByAccountId(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	names := make([]string, 0, len(favorites))
	for _, fav := range favorites {
		names = append(names, fav.Name)
	}
	return names, nil
}

func (f *FavoriteService) AddFavorite(ctx context.Context, accountID string, req request_models.AddFavoriteRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return utils.ErrInvalidInput
	}

	favorite := &db_models.Favorite{
		Name: strings.TrimSpace(req.Name),
		Addr: req.Addr,
		Kind: req.Kind,
	}

	if err := f.favoriteRepo.Insert(ctx, accountID, favorite); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (f *FavoriteService) RemoveFavorite(ctx context.Context, accountID string, name string) error {
	removed, err := f.favoriteRepo.DeleteByAccountIdAndName(ctx, accountID, name)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !removed {
		return utils.ErrFavoriteNotFound
	}
	return nil
}
