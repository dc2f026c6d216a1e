package domain

import "time"

// Member represents a club member
type Member struct {
	MembershipNumber int64
	Name             string
	Email            string
	Gender           string // free-text category, not an enum
	Handicap         int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasValidHandicap returns true if the handicap index is within the allowed range
func (m *Member) HasValidHandicap() bool {
	return m.Handicap >= MinHandicap && m.Handicap <= MaxHandicap
}
