package payroll

import (
	"sort"
)

// =============================================================================
// EVENT PARTITIONER - Per-day buckets over a sorted event stream
// =============================================================================

// DayEvents maps each calendar day to its ordered punches. The resolvers only
// ever look at one day (day shift) or an adjacent pair (night shift), so the
// partition is built once per run and then indexed.
type DayEvents map[WorkDate][]ClockEvent

// PartitionEvents groups events by the calendar day of their timestamp.
// The input is expected sorted ascending; the partitioner re-sorts defensively
// because downstream classification depends on punch order within a day.
func PartitionEvents(events []ClockEvent) DayEvents {
	sorted := make([]ClockEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].At.Before(sorted[j].At)
	})

	buckets := make(DayEvents)
	for _, ev := range sorted {
		day := ev.Day()
		buckets[day] = append(buckets[day], ev)
	}
	return buckets
}

// On returns the ordered events of a single day. Missing days yield nil.
func (de DayEvents) On(day WorkDate) []ClockEvent { return de[day] }

// Pair returns the events of a shift-start day and its morning-after day.
// Night-shift resolution always works on this adjacent pair.
func (de DayEvents) Pair(start WorkDate) (evening, morning []ClockEvent) {
	return de[start], de[start.Next()]
}

// =============================================================================
// PER-DAY ACCESSORS
// =============================================================================

func eventsOfType(events []ClockEvent, t EventType) []ClockEvent {
	var out []ClockEvent
	for _, ev := range events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

// firstOfType returns the earliest event of the given type, or nil.
func firstOfType(events []ClockEvent, t EventType) *ClockEvent {
	for i := range events {
		if events[i].Type == t {
			return &events[i]
		}
	}
	return nil
}

// lastOfType returns the latest event of the given type, or nil.
func lastOfType(events []ClockEvent, t EventType) *ClockEvent {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type == t {
			return &events[i]
		}
	}
	return nil
}

// lastEvent returns the final event of the day regardless of type, or nil.
func lastEvent(events []ClockEvent) *ClockEvent {
	if len(events) == 0 {
		return nil
	}
	return &events[len(events)-1]
}

// firstEvent returns the first event of the day regardless of type, or nil.
func firstEvent(events []ClockEvent) *ClockEvent {
	if len(events) == 0 {
		return nil
	}
	return &events[0]
}
