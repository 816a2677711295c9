package controllers

import (
	"github.com/gin-gonic/gin"

	"namdo/internal/models/response_models"
	"namdo/internal/services"
	"namdo/pkg/utils"
)

type PlacesController struct {
	catalog services.CatalogStoreInterface
}

func NewPlacesController(catalog services.CatalogStoreInterface) *PlacesController {
	return &PlacesController{catalog: catalog}
}

// ListPlaces returns the loaded place catalog.
func (p *PlacesController) ListPlaces(c *gin.Context) {
	if p.catalog.Err() != nil {
		utils.HandleServiceError(c, utils.ErrCatalogUnavailable)
		return
	}

	places := make([]response_models.PlaceResponse, 0, len(p.catalog.All()))
	for _, place := range p.catalog.All() {
		places = append(places, response_models.PlaceResponse{Name: place.Name, Addr: place.Addr})
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}
