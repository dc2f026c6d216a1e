package domain

import (
	"encoding/json"
	"fmt"
)

// Player represents a participant in a booking
// MembershipNumber is nil for non-member guests
//
// The JSON field names are part of the persisted player_details format and
// must stay stable across read-modify-write cycles.
type Player struct {
	Name             string `json:"Name"`
	Handicap         int    `json:"Handicap"`
	MembershipNumber *int64 `json:"MembershipNumber"`
}

// IsGuest returns true if the player is not a club member
func (p *Player) IsGuest() bool {
	return p.MembershipNumber == nil
}

// EncodePlayers serialises a player list to the persisted JSON encoding
// The encoding preserves player order and is stable: encode(decode(encode(x))) == encode(x)
func EncodePlayers(players []Player) (string, error) {
	if players == nil {
		players = []Player{}
	}
	data, err := json.Marshal(players)
	if err != nil {
		return "", fmt.Errorf("domain: failed to encode players: %w", err)
	}
	return string(data), nil
}

// DecodePlayers parses the persisted JSON encoding back into a player list
func DecodePlayers(details string) ([]Player, error) {
	if details == "" {
		return []Player{}, nil
	}
	var players []Player
	if err := json.Unmarshal([]byte(details), &players); err != nil {
		return nil, fmt.Errorf("domain: failed to decode players: %w", err)
	}
	return players, nil
}
