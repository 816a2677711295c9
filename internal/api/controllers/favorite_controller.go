package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"namdo/internal/models/request_models"
	"namdo/internal/services"
	"namdo/pkg/utils"
)

type FavoriteController struct {
	favoriteService services.FavoriteServiceInterface
}

func NewFavoriteController(favoriteService services.FavoriteServiceInterface) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
	}
}

func (f *FavoriteController) ListFavorites(c *gin.Context) {
	accountID := c.GetString("user_id")

	favorites, err := f.favoriteService.ListFavorites(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, favorites, "Favorites fetched successfully")
}

func (f *FavoriteController) AddFavorite(c *gin.Context) {
	var req request_models.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Favorite name is required")
		return
	}

	accountID := c.GetString("user_id")

	if err := f.favoriteService.AddFavorite(c.Request.Context(), accountID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Favorite added successfully")
}

func (f *FavoriteController) RemoveFavorite(c *gin.Context) {
	var req request_models.RemoveFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Favorite name is required")
		return
	}

	accountID := c.GetString("user_id")

	if err := f.favoriteService.RemoveFavorite(c.Request.Context(), accountID, req.Name); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Favorite removed successfully")
}
