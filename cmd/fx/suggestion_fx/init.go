package suggestion_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"itinerario/pkg/utils"
)

var Module = fx.Provide(
	ProvideSuggestionClient)

// SuggestionConfig holds configuration for suggestion clients
type SuggestionConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideSuggestionClient creates a suggestion client based on environment variables
func ProvideSuggestionClient() (utils.SuggestionClientInterface, error) {
	config := getSuggestionConfig()

	log.Printf("Initializing %s suggestion client with model: %s", config.Provider, config.Model)

	return utils.NewSuggestionClient(config.Provider, config.APIKey, config.Model)
}

// getSuggestionConfig reads configuration from environment variables
func getSuggestionConfig() SuggestionConfig {
	provider := getEnvWithDefault("SUGGESTION_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
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

	return SuggestionConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
