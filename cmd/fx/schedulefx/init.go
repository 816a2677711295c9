package schedulefx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"namdo/internal/api/controllers"
	"namdo/internal/services"
	"namdo/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerationClient,
	ProvideScheduleService,
	ProvideScheduleController,
)

// GenerationConfig holds configuration for the completion provider.
type GenerationConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideGenerationClient creates a completion client based on environment
// variables.
func ProvideGenerationClient() (utils.GenerationClientInterface, error) {
	config := getGenerationConfig()

	log.Printf("Initializing %s schedule generation client with model: %s", config.Provider, config.Model)

	return utils.NewGenerationClient(config.Provider, config.APIKey, config.Model)
}

func ProvideScheduleService(
	catalog services.CatalogStoreInterface,
	favoriteService services.FavoriteServiceInterface,
	generator utils.GenerationClientInterface,
) services.ScheduleServiceInterface {
	return services.NewScheduleService(catalog, favoriteService, generator)
}

func ProvideScheduleController(scheduleService services.ScheduleServiceInterface) *controllers.ScheduleController {
	return controllers.NewScheduleController(scheduleService)
}

func getGenerationConfig() GenerationConfig {
	provider := getEnvWithDefault("SCHEDULE_PROVIDER", "openai")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return GenerationConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
