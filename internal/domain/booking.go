package domain

import (
	"time"

	"github.com/m04kA/PGC-BookingService/pkg/types"
)

// Booking represents a tee-time reservation for one member on one date
type Booking struct {
	ID               int64
	MembershipNumber int64
	Date             time.Time // date-only granularity, time-of-day is ignored
	TimeSlot         types.TimeString
	Players          []Player

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlayerCount returns the number of players on the booking
func (b *Booking) PlayerCount() int {
	return len(b.Players)
}

// HasTooManyPlayers returns true if the booking exceeds the party size limit
func (b *Booking) HasTooManyPlayers() bool {
	return len(b.Players) > MaxPlayersPerBooking
}

// DateOnly returns the booking date truncated to midnight
// Bookings compare by calendar date, never by time-of-day
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay returns true if both timestamps fall on the same calendar date
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
