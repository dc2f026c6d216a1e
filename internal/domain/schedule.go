package domain

import "github.com/m04kA/PGC-BookingService/pkg/types"

// GenerateTeeTimeSlots returns the canonical daily tee-time grid:
// every 15 minutes from 08:00 to 17:00, both boundaries included.
// The grid is the same for every calendar date and is generated without I/O.
func GenerateTeeTimeSlots() []types.TimeString {
	slots := make([]types.TimeString, 0, TeeTimeSlotsPerDay)

	current := types.TimeString(FirstTeeTime)
	last := types.TimeString(LastTeeTime)

	for {
		slots = append(slots, current)
		if !current.IsBefore(last) {
			break
		}
		next, err := current.AddMinutes(SlotIntervalMinutes)
		if err != nil {
			// unreachable for the fixed club-day boundaries
			break
		}
		current = next
	}

	return slots
}

// IsCanonicalTeeTime returns true if the slot is a member of the daily grid
func IsCanonicalTeeTime(slot types.TimeString) bool {
	for _, s := range GenerateTeeTimeSlots() {
		if s == slot {
			return true
		}
	}
	return false
}
