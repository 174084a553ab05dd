package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinerario/internal/models/request_models"
)

func pendingFixture(keys ...string) []PendingActivity {
	out := make([]PendingActivity, 0, len(keys))
	for _, key := range keys {
		out = append(out, PendingActivity{
			Key:               key,
			Category:          "sightseeing",
			SelectionCategory: SelectionSightseeing,
			Venue:             makeVenue("venue-"+key, "museum", 4.5, 100, 2),
			Description:       "Visit venue-" + key,
		})
	}
	return out
}

func TestReconcileDaySlotsAcceptsValidProposal(t *testing.T) {
	pending := pendingFixture("a", "b")
	proposal := []request_models.DaySlotSuggestion{
		{ID: "a", StartTime: "09:00", EndTime: "11:00", Description: "Morning at the museum"},
		{ID: "b", StartTime: "14:00", EndTime: "16:00"},
	}

	placed := ReconcileDaySlots(proposal, nil, pending)

	require.Len(t, placed, 2)
	assert.Equal(t, "a", placed[0].Key)
	assert.Equal(t, 9*60, placed[0].StartMinutes)
	assert.Equal(t, 11*60, placed[0].EndMinutes)
	assert.Equal(t, 120, placed[0].DurationMinutes)
	// Proposed description overrides the generated one.
	assert.Equal(t, "Morning at the museum", placed[0].Description)
	// Absent descriptions keep the generated one.
	assert.Equal(t, "Visit venue-b", placed[1].Description)
}

func TestReconcileDaySlotsRejectsWholeProposalOnOverlap(t *testing.T) {
	pending := pendingFixture("a", "b")
	proposal := []request_models.DaySlotSuggestion{
		{ID: "a", StartTime: "09:00", EndTime: "11:00"},
		{ID: "b", StartTime: "10:30", EndTime: "12:00"},
	}

	placed := ReconcileDaySlots(proposal, nil, pending)

	// All-or-nothing: even the valid first entry is discarded and the
	// canonical template takes over.
	require.Len(t, placed, 2)
	assert.Equal(t, 7*60, placed[0].StartMinutes)
	assert.Equal(t, 8*60, placed[0].EndMinutes)
	assert.Equal(t, 8*60, placed[1].StartMinutes)
	assert.Equal(t, 9*60, placed[1].EndMinutes)
}

func TestReconcileDaySlotsRejectsOverlapWithFixedActivities(t *testing.T) {
	pending := pendingFixture("a")
	fixed := []ScheduledInterval{{7 * 60, 9 * 60}}
	proposal := []request_models.DaySlotSuggestion{
		{ID: "a", StartTime: "08:30", EndTime: "10:00"},
	}

	placed := ReconcileDaySlots(proposal, fixed, pending)

	// Canonical fallback skips the template slots the fixed block occupies.
	require.Len(t, placed, 1)
	assert.Equal(t, 9*60, placed[0].StartMinutes)
	assert.Equal(t, 11*60, placed[0].EndMinutes)
}

func TestReconcileDaySlotsRejectsMalformedProposals(t *testing.T) {
	pending := pendingFixture("a", "b")

	tests := []struct {
		name     string
		proposal []request_models.DaySlotSuggestion
	}{
		{"unknown id", []request_models.DaySlotSuggestion{
			{ID: "zzz", StartTime: "09:00", EndTime: "10:00"},
		}},
		{"duplicate id", []request_models.DaySlotSuggestion{
			{ID: "a", StartTime: "09:00", EndTime: "10:00"},
			{ID: "a", StartTime: "11:00", EndTime: "12:00"},
		}},
		{"unparseable time", []request_models.DaySlotSuggestion{
			{ID: "a", StartTime: "9am", EndTime: "10:00"},
		}},
		{"inverted interval", []request_models.DaySlotSuggestion{
			{ID: "a", StartTime: "11:00", EndTime: "10:00"},
		}},
		{"empty interval", []request_models.DaySlotSuggestion{
			{ID: "a", StartTime: "10:00", EndTime: "10:00"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placed := ReconcileDaySlots(tt.proposal, nil, pending)
			require.Len(t, placed, 2)
			// Canonical template, consumed positionally.
			assert.Equal(t, 7*60, placed[0].StartMinutes)
			assert.Equal(t, 8*60, placed[1].StartMinutes)
		})
	}
}

func TestReconcileDaySlotsRejectsIncompleteProposal(t *testing.T) {
	pending := pendingFixture("a", "b", "c")
	proposal := []request_models.DaySlotSuggestion{
		{ID: "a", StartTime: "09:00", EndTime: "10:00"},
		{ID: "c", StartTime: "14:00", EndTime: "15:00"},
	}

	placed := ReconcileDaySlots(proposal, nil, pending)

	// A proposal that leaves "b" without a slot is discarded whole; every
	// pending activity gets a canonical slot instead of "b" being dropped.
	require.Len(t, placed, 3)
	assert.Equal(t, "a", placed[0].Key)
	assert.Equal(t, "b", placed[1].Key)
	assert.Equal(t, "c", placed[2].Key)
	assert.Equal(t, 7*60, placed[0].StartMinutes)
	assert.Equal(t, 8*60, placed[1].StartMinutes)
	assert.Equal(t, 9*60, placed[2].StartMinutes)
}

func TestReconcileDaySlotsCanonicalTemplateIsDeterministic(t *testing.T) {
	pending := pendingFixture("a", "b", "c")

	first := ReconcileDaySlots(nil, nil, pending)
	second := ReconcileDaySlots(nil, nil, pending)

	assert.Equal(t, first, second)
}

func TestReconcileDaySlotsDropsPendingWhenTemplateExhausted(t *testing.T) {
	keys := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		keys = append(keys, fmt.Sprintf("p%d", i))
	}
	pending := pendingFixture(keys...)

	placed := ReconcileDaySlots(nil, nil, pending)

	// Eight canonical slots exist; the ninth and tenth activities are dropped.
	require.Len(t, placed, 8)
	assert.Equal(t, "p7", placed[7].Key)
	assert.Equal(t, 20*60+30, placed[7].StartMinutes)
	assert.Equal(t, 22*60, placed[7].EndMinutes)
}

func TestReconcileDaySlotsEmptyPending(t *testing.T) {
	proposal := []request_models.DaySlotSuggestion{
		{ID: "a", StartTime: "09:00", EndTime: "10:00"},
	}
	assert.Nil(t, ReconcileDaySlots(proposal, nil, nil))
}
