package catalogfx

import (
	"os"

	"go.uber.org/fx"

	"namdo/internal/api/controllers"
	"namdo/internal/services"
)

var Module = fx.Provide(
	ProvideCatalogStore,
	ProvidePlacesController,
)

// ProvideCatalogStore loads the static place catalog once at startup. A
// failed load does not abort startup: the store reports the error on every
// request until the resource is fixed.
func ProvideCatalogStore() services.CatalogStoreInterface {
	path := os.Getenv("PLACES_FILE")
	if path == "" {
		path = "data/places.json"
	}
	return services.NewCatalogStoreFromFile(path)
}

func ProvidePlacesController(catalog services.CatalogStoreInterface) *controllers.PlacesController {
	return controllers.NewPlacesController(catalog)
}
