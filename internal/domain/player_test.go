package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PGC-BookingService/pkg/ptr"
)

func TestEncodePlayers_FieldNames(t *testing.T) {
	players := []Player{
		{Name: "Alice", Handicap: 12, MembershipNumber: ptr.Ptr(int64(101))},
		{Name: "Guest Bob", Handicap: 30, MembershipNumber: nil},
	}

	encoded, err := EncodePlayers(players)
	require.NoError(t, err)

	// Имена полей зафиксированы форматом хранения
	assert.Contains(t, encoded, `"Name":"Alice"`)
	assert.Contains(t, encoded, `"Handicap":12`)
	assert.Contains(t, encoded, `"MembershipNumber":101`)
	assert.Contains(t, encoded, `"MembershipNumber":null`)
}

func TestEncodePlayers_Empty(t *testing.T) {
	encoded, err := EncodePlayers(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)

	encoded, err = EncodePlayers([]Player{})
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)
}

func TestDecodePlayers(t *testing.T) {
	players, err := DecodePlayers(`[{"Name":"Alice","Handicap":12,"MembershipNumber":101},{"Name":"Guest","Handicap":30,"MembershipNumber":null}]`)
	require.NoError(t, err)
	require.Len(t, players, 2)

	assert.Equal(t, "Alice", players[0].Name)
	assert.Equal(t, 12, players[0].Handicap)
	require.NotNil(t, players[0].MembershipNumber)
	assert.Equal(t, int64(101), *players[0].MembershipNumber)
	assert.False(t, players[0].IsGuest())

	assert.Equal(t, "Guest", players[1].Name)
	assert.Nil(t, players[1].MembershipNumber)
	assert.True(t, players[1].IsGuest())
}

func TestDecodePlayers_EmptyInput(t *testing.T) {
	players, err := DecodePlayers("")
	require.NoError(t, err)
	assert.Empty(t, players)

	players, err = DecodePlayers("[]")
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestDecodePlayers_Invalid(t *testing.T) {
	_, err := DecodePlayers("{not json")
	assert.Error(t, err)
}

func TestPlayers_RoundTrip(t *testing.T) {
	original := []Player{
		{Name: "Alice", Handicap: 12, MembershipNumber: ptr.Ptr(int64(101))},
		{Name: "Bob", Handicap: 5, MembershipNumber: ptr.Ptr(int64(202))},
		{Name: "Guest Carol", Handicap: 54, MembershipNumber: nil},
	}

	encoded, err := EncodePlayers(original)
	require.NoError(t, err)

	decoded, err := DecodePlayers(encoded)
	require.NoError(t, err)

	// Порядок и состав сохраняются, гости остаются гостями
	require.Equal(t, original, decoded)

	// Стабильность кодирования при циклах чтения-записи
	reencoded, err := EncodePlayers(decoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, reencoded)
}
