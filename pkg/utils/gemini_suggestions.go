package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"itinerario/internal/models/request_models"
)

// GeminiSuggestionClient implements SuggestionClientInterface using Google's
// Gemini models.
type GeminiSuggestionClient struct {
	client *genai.Client
	model  string
}

// NewGeminiSuggestionClient creates a new Gemini-backed suggestion client.
func NewGeminiSuggestionClient(apiKey, model string) (SuggestionClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSuggestionClient{
		client: client,
		model:  model,
	}, nil
}

// generateJSON runs one prompt and returns cleaned, syntactically valid JSON.
func (c *GeminiSuggestionClient) generateJSON(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so callers can unmarshal directly.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(4000)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", ErrOracleUnavailable, err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content generated by gemini", ErrOracleMalformed)
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	content = CleanJSONResponse(content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("%w: gemini returned invalid JSON", ErrOracleMalformed)
	}
	return content, nil
}

func (c *GeminiSuggestionClient) ResolveCategoryTypes(ctx context.Context, preferences string, budget *float64, priceLevel *int) (*request_models.CategoryTypeSuggestion, error) {
	raw, err := c.generateJSON(ctx, buildCategoryTypesPrompt(preferences, budget, priceLevel))
	if err != nil {
		return nil, err
	}
	return decodeCategoryTypes(raw)
}

func (c *GeminiSuggestionClient) RankVenues(ctx context.Context, candidates []request_models.VenueSummary, category, preferences string, budget *float64, maxCount int) ([]request_models.VenuePick, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidates supplied")
	}
	raw, err := c.generateJSON(ctx, buildRankVenuesPrompt(candidates, category, preferences, budget, maxCount))
	if err != nil {
		return nil, err
	}
	return decodeVenuePicks(raw, maxCount)
}

func (c *GeminiSuggestionClient) DistributeDay(ctx context.Context, pending []request_models.PendingActivitySummary, fixed []request_models.FixedActivitySummary, preferences string, budget *float64) ([]request_models.DaySlotSuggestion, error) {
	if len(pending) == 0 {
		return nil, fmt.Errorf("no pending activities supplied")
	}
	raw, err := c.generateJSON(ctx, buildDistributeDayPrompt(pending, fixed, preferences, budget))
	if err != nil {
		return nil, err
	}
	return decodeDaySlots(raw)
}

// Close closes the Gemini client.
func (c *GeminiSuggestionClient) Close() error {
	return c.client.Close()
}
