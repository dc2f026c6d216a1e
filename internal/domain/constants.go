package domain

// Tee sheet constants
const (
	// FirstTeeTime first bookable tee time of the day
	FirstTeeTime = "08:00"

	// LastTeeTime last bookable tee time of the day (inclusive)
	LastTeeTime = "17:00"

	// SlotIntervalMinutes interval between consecutive tee times
	SlotIntervalMinutes = 15

	// TeeTimeSlotsPerDay number of slots on the daily grid (both boundaries inclusive)
	TeeTimeSlotsPerDay = 37
)

// Business validation constants
const (
	MaxPlayersPerBooking = 4
	MinHandicap          = 0
	MaxHandicap          = 54
	MaxMemberNameLength  = 255
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
