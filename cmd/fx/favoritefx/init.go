package favoritefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"namdo/internal/api/controllers"
	"namdo/internal/repositories"
	"namdo/internal/services"
)

var Module = fx.Provide(
	provideFavoriteRepo,
	provideFavoriteService,
	provideFavoriteController,
)

func provideFavoriteRepo(db *gorm.DB) repositories.FavoriteRepository {
	return repositories.NewFavoriteRepository(db)
}

func provideFavoriteService(favoriteRepo repositories.FavoriteRepository) services.FavoriteServiceInterface {
	return services.NewFavoriteService(favoriteRepo)
}

func provideFavoriteController(favoriteService services.FavoriteServiceInterface) *controllers.FavoriteController {
	return controllers.NewFavoriteController(favoriteService)
}
