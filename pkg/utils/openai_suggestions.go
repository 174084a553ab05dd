package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"itinerario/internal/models/request_models"
)

// OpenAISuggestionClient implements SuggestionClientInterface on top of the
// OpenAI chat completion API.
type OpenAISuggestionClient struct {
	client *openai.Client
	model  string
}

func NewOpenAISuggestionClient(apiKey, model string) SuggestionClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAISuggestionClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAISuggestionClient) generateJSON(ctx context.Context, prompt string) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a travel planning assistant. Respond with JSON only, no prose, no markdown.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", ErrOracleUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no content generated by openai", ErrOracleMalformed)
	}

	content := CleanJSONResponse(resp.Choices[0].Message.Content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("%w: openai returned invalid JSON", ErrOracleMalformed)
	}
	return content, nil
}

func (c *OpenAISuggestionClient) ResolveCategoryTypes(ctx context.Context, preferences string, budget *float64, priceLevel *int) (*request_models.CategoryTypeSuggestion, error) {
	raw, err := c.generateJSON(ctx, buildCategoryTypesPrompt(preferences, budget, priceLevel))
	if err != nil {
		return nil, err
	}
	return decodeCategoryTypes(raw)
}

func (c *OpenAISuggestionClient) RankVenues(ctx context.Context, candidates []request_models.VenueSummary, category, preferences string, budget *float64, maxCount int) ([]request_models.VenuePick, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidates supplied")
	}
	raw, err := c.generateJSON(ctx, buildRankVenuesPrompt(candidates, category, preferences, budget, maxCount))
	if err != nil {
		return nil, err
	}
	return decodeVenuePicks(raw, maxCount)
}

func (c *OpenAISuggestionClient) DistributeDay(ctx context.Context, pending []request_models.PendingActivitySummary, fixed []request_models.FixedActivitySummary, preferences string, budget *float64) ([]request_models.DaySlotSuggestion, error) {
	if len(pending) == 0 {
		return nil, fmt.Errorf("no pending activities supplied")
	}
	raw, err := c.generateJSON(ctx, buildDistributeDayPrompt(pending, fixed, preferences, budget))
	if err != nil {
		return nil, err
	}
	return decodeDaySlots(raw)
}
