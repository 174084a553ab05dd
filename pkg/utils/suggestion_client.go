package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"itinerario/internal/models/request_models"

	"context"
)

// SuggestionClientInterface is the whole contract with the LLM-backed
// suggestion service: type resolution, venue ranking and day distribution.
// Every caller pairs each method with a deterministic local fallback, so a
// failing client degrades schedule quality instead of failing a planning run.
type SuggestionClientInterface interface {
	ResolveCategoryTypes(ctx context.Context, preferences string, budget *float64, priceLevel *int) (*request_models.CategoryTypeSuggestion, error)
	RankVenues(ctx context.Context, candidates []request_models.VenueSummary, category, preferences string, budget *float64, maxCount int) ([]request_models.VenuePick, error)
	DistributeDay(ctx context.Context, pending []request_models.PendingActivitySummary, fixed []request_models.FixedActivitySummary, preferences string, budget *float64) ([]request_models.DaySlotSuggestion, error)
}

// NewSuggestionClient Factory function to create either an OpenAI or Gemini
// backed client based on config.
func NewSuggestionClient(provider, apiKey, model string) (SuggestionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAISuggestionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiSuggestionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported suggestion provider: %s", provider)
	}
}

// ── prompt builders shared by both clients ──────────────────────────────

func buildConstraintLines(preferences string, budget *float64, priceLevel *int) string {
	var b strings.Builder
	if strings.TrimSpace(preferences) != "" {
		fmt.Fprintf(&b, "Traveler preferences: %s\n", preferences)
	}
	if budget != nil {
		fmt.Fprintf(&b, "Total budget: %.2f\n", *budget)
	}
	if priceLevel != nil {
		fmt.Fprintf(&b, "Preferred price level (0-4): %d\n", *priceLevel)
	}
	return b.String()
}

func buildCategoryTypesPrompt(preferences string, budget *float64, priceLevel *int) string {
	var prompt strings.Builder
	prompt.WriteString("Map a traveler profile to allowed venue types for a trip itinerary.\n")
	prompt.WriteString(buildConstraintLines(preferences, budget, priceLevel))
	prompt.WriteString(`
Return JSON only, matching this schema exactly:
{"lodging":["hotel"],"food":["restaurant"],"sights":["museum"],"shopping":["store"]}

Use short snake_case venue type tags (e.g. hotel, resort, restaurant, cafe,
bar, tourist_attraction, museum, park, shopping_mall, store). 1-3 tags per
category. JSON only, no markdown.`)
	return prompt.String()
}

func buildRankVenuesPrompt(candidates []request_models.VenueSummary, category, preferences string, budget *float64, maxCount int) string {
	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Pick at most %d venue(s) for the %q slot of a trip itinerary.\n", maxCount, category)
	prompt.WriteString(buildConstraintLines(preferences, budget, nil))
	prompt.WriteString("\nCandidates (use exact ID values from this list only):\n")
	for _, c := range candidates {
		fmt.Fprintf(&prompt, "- ID:%s | Name:%s | Types:%s | Rating:%.1f | Reviews:%d | PriceLevel:%d\n",
			c.ID, c.Name, strings.Join(c.Types, ","), c.Rating, c.ReviewCount, c.PriceLevel)
	}
	fmt.Fprintf(&prompt, `
Return JSON only, matching this schema exactly:
[{"id":"exact-id-from-list","rationale":"one short sentence"}]

At most %d entries. JSON only, no markdown.`, maxCount)
	return prompt.String()
}

func buildDistributeDayPrompt(pending []request_models.PendingActivitySummary, fixed []request_models.FixedActivitySummary, preferences string, budget *float64) string {
	var prompt strings.Builder
	prompt.WriteString("Assign non-overlapping time slots to the pending activities of one itinerary day.\n")
	prompt.WriteString(buildConstraintLines(preferences, budget, nil))
	if len(fixed) > 0 {
		prompt.WriteString("\nAlready fixed (do not overlap these):\n")
		for _, f := range fixed {
			fmt.Fprintf(&prompt, "- %s %s-%s\n", f.Category, f.StartTime, f.EndTime)
		}
	}
	prompt.WriteString("\nPending activities (use exact id values):\n")
	for _, p := range pending {
		fmt.Fprintf(&prompt, "- id:%s | category:%s | venue:%s | hours:%s\n",
			p.ID, p.Category, p.Venue.Name, p.Venue.OpeningHours)
	}
	prompt.WriteString(`
Return JSON only, matching this schema exactly:
[{"id":"exact-id-from-list","start_time":"09:00","end_time":"11:00","description":"one short sentence"}]

Hard constraints:
- One entry per pending activity, every id from the list above.
- Times formatted HH:MM, between 07:00 and 23:00, start_time < end_time.
- No two intervals may overlap, including the fixed ones.
JSON only, no markdown.`)
	return prompt.String()
}

// ── response decoders shared by both clients ────────────────────────────

func decodeCategoryTypes(raw string) (*request_models.CategoryTypeSuggestion, error) {
	var out request_models.CategoryTypeSuggestion
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("%w: category types: %v", ErrOracleMalformed, err)
	}
	if len(out.Lodging)+len(out.Food)+len(out.Sights)+len(out.Shopping) == 0 {
		return nil, fmt.Errorf("%w: category type response is empty", ErrOracleMalformed)
	}
	return &out, nil
}

func decodeVenuePicks(raw string, maxCount int) ([]request_models.VenuePick, error) {
	var picks []request_models.VenuePick
	if err := json.Unmarshal([]byte(raw), &picks); err != nil {
		return nil, fmt.Errorf("%w: venue picks: %v", ErrOracleMalformed, err)
	}
	if len(picks) == 0 {
		return nil, fmt.Errorf("%w: venue pick response is empty", ErrOracleMalformed)
	}
	if len(picks) > maxCount {
		picks = picks[:maxCount]
	}
	return picks, nil
}

func decodeDaySlots(raw string) ([]request_models.DaySlotSuggestion, error) {
	var slots []request_models.DaySlotSuggestion
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, fmt.Errorf("%w: day distribution: %v", ErrOracleMalformed, err)
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: day distribution response is empty", ErrOracleMalformed)
	}
	return slots, nil
}

// CleanJSONResponse removes markdown formatting and extra text with improved
// extraction.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")

	response = strings.TrimSpace(response)

	// Find JSON boundaries more accurately
	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if objEnd := findMatchingDelimiter(response, objStart, '{', '}'); objEnd != -1 {
			response = response[objStart : objEnd+1]
		}
	} else if arrStart != -1 {
		if arrEnd := findMatchingDelimiter(response, arrStart, '[', ']'); arrEnd != -1 {
			response = response[arrStart : arrEnd+1]
		}
	}

	return strings.TrimSpace(response)
}

// findMatchingDelimiter finds the closing delimiter matching the opener at
// start, honoring string literals and escapes.
func findMatchingDelimiter(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
