package services

import (
	"log"

	"itinerario/internal/models/db_models"
	"itinerario/internal/models/request_models"
	"itinerario/pkg/utils"
)

// ScheduledInterval is an already-committed block of the day, in minutes
// from midnight.
type ScheduledInterval struct {
	StartMinutes int
	EndMinutes   int
}

// PendingActivity is one activity awaiting a time slot. Key is the id used
// in the suggestion-service exchange; Category is the persisted tag;
// SelectionCategory drives cost estimation.
type PendingActivity struct {
	Key               string
	Category          string
	SelectionCategory string
	Venue             db_models.Venue
	Description       string
}

// PlacedActivity is a pending activity with its final slot assigned.
type PlacedActivity struct {
	PendingActivity
	StartMinutes    int
	EndMinutes      int
	DurationMinutes int
}

// canonicalSlots is the fixed fallback template applied, in order, whenever
// a proposed distribution is absent or invalid.
var canonicalSlots = []ScheduledInterval{
	{7 * 60, 8 * 60},           // 07:00-08:00
	{8 * 60, 9 * 60},           // 08:00-09:00
	{9 * 60, 11 * 60},          // 09:00-11:00
	{12*60 + 30, 13*60 + 30},   // 12:30-13:30
	{14 * 60, 16 * 60},         // 14:00-16:00
	{16*60 + 30, 17*60 + 30},   // 16:30-17:30
	{19 * 60, 20 * 60},         // 19:00-20:00
	{20*60 + 30, 22 * 60},      // 20:30-22:00
}

// ReconcileDaySlots validates a proposed time distribution against the day's
// fixed activities and returns the final placements. Acceptance is
// all-or-nothing: any unparseable entry, unknown id, duplicate id, overlap,
// or a pending activity the proposal leaves without a slot
// discards the whole proposal and the canonical template takes over,
// consumed positionally in the order the pending activities were generated.
// Template slots colliding with a fixed activity are skipped; pending
// activities left over when the template runs out are dropped. Pure and
// deterministic.
func ReconcileDaySlots(proposal []request_models.DaySlotSuggestion, fixed []ScheduledInterval, pending []PendingActivity) []PlacedActivity {
	if len(pending) == 0 {
		return nil
	}

	if placed, ok := tryAcceptProposal(proposal, fixed, pending); ok {
		return placed
	}

	return applyCanonicalSlots(fixed, pending)
}

func tryAcceptProposal(proposal []request_models.DaySlotSuggestion, fixed []ScheduledInterval, pending []PendingActivity) ([]PlacedActivity, bool) {
	if len(proposal) == 0 {
		return nil, false
	}

	byKey := make(map[string]*PendingActivity, len(pending))
	for i := range pending {
		byKey[pending[i].Key] = &pending[i]
	}

	seen := make(map[string]bool, len(proposal))
	placed := make([]PlacedActivity, 0, len(proposal))
	intervals := make([]ScheduledInterval, 0, len(proposal)+len(fixed))
	intervals = append(intervals, fixed...)

	for _, slot := range proposal {
		activity, ok := byKey[slot.ID]
		if !ok || seen[slot.ID] {
			log.Printf("discarding proposed distribution: unknown or duplicate id %q", slot.ID)
			return nil, false
		}
		seen[slot.ID] = true

		start, err := utils.ParseClockMinutes(slot.StartTime)
		if err != nil {
			log.Printf("discarding proposed distribution: %v", err)
			return nil, false
		}
		end, err := utils.ParseClockMinutes(slot.EndTime)
		if err != nil {
			log.Printf("discarding proposed distribution: %v", err)
			return nil, false
		}
		if start >= end {
			log.Printf("discarding proposed distribution: empty interval %s-%s for %q", slot.StartTime, slot.EndTime, slot.ID)
			return nil, false
		}

		for _, existing := range intervals {
			if utils.IntervalsOverlap(start, end, existing.StartMinutes, existing.EndMinutes) {
				log.Printf("discarding proposed distribution: %q overlaps an existing interval", slot.ID)
				return nil, false
			}
		}
		intervals = append(intervals, ScheduledInterval{start, end})

		out := PlacedActivity{
			PendingActivity: *activity,
			StartMinutes:    start,
			EndMinutes:      end,
			DurationMinutes: end - start,
		}
		if slot.Description != "" {
			out.Description = slot.Description
		}
		placed = append(placed, out)
	}

	if len(placed) != len(pending) {
		log.Printf("discarding proposed distribution: covers %d of %d activities", len(placed), len(pending))
		return nil, false
	}

	return placed, true
}

func applyCanonicalSlots(fixed []ScheduledInterval, pending []PendingActivity) []PlacedActivity {
	placed := make([]PlacedActivity, 0, len(pending))
	slotIdx := 0

	for _, activity := range pending {
		for slotIdx < len(canonicalSlots) && overlapsAny(canonicalSlots[slotIdx], fixed) {
			slotIdx++
		}
		if slotIdx >= len(canonicalSlots) {
			log.Printf("canonical slots exhausted, dropping activity %q", activity.Key)
			continue
		}
		slot := canonicalSlots[slotIdx]
		slotIdx++

		placed = append(placed, PlacedActivity{
			PendingActivity: activity,
			StartMinutes:    slot.StartMinutes,
			EndMinutes:      slot.EndMinutes,
			DurationMinutes: slot.EndMinutes - slot.StartMinutes,
		})
	}

	return placed
}

func overlapsAny(slot ScheduledInterval, fixed []ScheduledInterval) bool {
	for _, f := range fixed {
		if utils.IntervalsOverlap(slot.StartMinutes, slot.EndMinutes, f.StartMinutes, f.EndMinutes) {
			return true
		}
	}
	return false
}
