package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PGC-BookingService/pkg/types"
)

func TestGenerateTeeTimeSlots(t *testing.T) {
	slots := GenerateTeeTimeSlots()

	require.Len(t, slots, TeeTimeSlotsPerDay)
	assert.Equal(t, types.TimeString(FirstTeeTime), slots[0])
	assert.Equal(t, types.TimeString(LastTeeTime), slots[len(slots)-1])
}

func TestGenerateTeeTimeSlots_SpacingAndOrder(t *testing.T) {
	slots := GenerateTeeTimeSlots()

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]),
			"slot %s must precede %s", slots[i-1], slots[i])

		prev, err := slots[i-1].Minutes()
		require.NoError(t, err)
		curr, err := slots[i].Minutes()
		require.NoError(t, err)
		assert.Equal(t, SlotIntervalMinutes, curr-prev,
			"slots %s and %s must be %d minutes apart", slots[i-1], slots[i], SlotIntervalMinutes)
	}
}

func TestGenerateTeeTimeSlots_Deterministic(t *testing.T) {
	// Сетка не зависит от даты и внешнего состояния
	assert.Equal(t, GenerateTeeTimeSlots(), GenerateTeeTimeSlots())
}

func TestIsCanonicalTeeTime(t *testing.T) {
	tests := []struct {
		slot types.TimeString
		want bool
	}{
		{"08:00", true},
		{"09:15", true},
		{"16:45", true},
		{"17:00", true},
		{"07:45", false}, // до открытия
		{"17:15", false}, // после последнего слота
		{"08:07", false}, // не кратно 15 минутам
		{"8:00", false},  // без ведущего нуля
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.slot), func(t *testing.T) {
			assert.Equal(t, tt.want, IsCanonicalTeeTime(tt.slot))
		})
	}
}
