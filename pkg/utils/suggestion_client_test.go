package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONResponseStripsMarkdownFences(t *testing.T) {
	raw := "```json\n{\"lodging\":[\"hotel\"]}\n```"
	assert.Equal(t, `{"lodging":["hotel"]}`, CleanJSONResponse(raw))
}

func TestCleanJSONResponseExtractsEmbeddedObject(t *testing.T) {
	raw := `Sure, here is the mapping you asked for: {"food":["cafe"]} hope it helps!`
	assert.Equal(t, `{"food":["cafe"]}`, CleanJSONResponse(raw))
}

func TestCleanJSONResponseExtractsEmbeddedArray(t *testing.T) {
	raw := "Here you go:\n[{\"id\":\"a\"},{\"id\":\"b\"}]\nLet me know."
	assert.Equal(t, `[{"id":"a"},{"id":"b"}]`, CleanJSONResponse(raw))
}

func TestCleanJSONResponseHonorsStringLiterals(t *testing.T) {
	raw := `{"rationale":"great for kids {and adults}"}`
	assert.Equal(t, raw, CleanJSONResponse(raw))

	escaped := `{"rationale":"quote \" inside"}`
	assert.Equal(t, escaped, CleanJSONResponse(escaped))
}

func TestDecodeCategoryTypes(t *testing.T) {
	out, err := decodeCategoryTypes(`{"lodging":["hotel"],"food":["cafe"],"sights":[],"shopping":[]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"hotel"}, out.Lodging)
	assert.Equal(t, []string{"cafe"}, out.Food)

	_, err = decodeCategoryTypes(`{"lodging":[],"food":[],"sights":[],"shopping":[]}`)
	assert.Error(t, err)

	_, err = decodeCategoryTypes(`not json`)
	assert.Error(t, err)
}

func TestDecodeVenuePicksTruncatesToMaxCount(t *testing.T) {
	picks, err := decodeVenuePicks(`[{"id":"a"},{"id":"b"},{"id":"c"}]`, 2)
	require.NoError(t, err)
	require.Len(t, picks, 2)
	assert.Equal(t, "a", picks[0].ID)
	assert.Equal(t, "b", picks[1].ID)

	_, err = decodeVenuePicks(`[]`, 2)
	assert.Error(t, err)
}

func TestDecodeDaySlots(t *testing.T) {
	slots, err := decodeDaySlots(`[{"id":"lunch","start_time":"12:30","end_time":"13:30"}]`)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "lunch", slots[0].ID)
	assert.Equal(t, "12:30", slots[0].StartTime)

	_, err = decodeDaySlots(`{}`)
	assert.Error(t, err)
}

func TestNewSuggestionClientRejectsUnknownProvider(t *testing.T) {
	_, err := NewSuggestionClient("claude", "key", "model")
	assert.Error(t, err)
}
