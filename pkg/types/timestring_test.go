package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 6, 1, 9, 15, 42, 0, time.UTC))
	assert.Equal(t, TimeString("09:15"), ts)
}

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning slot", input: "08:00"},
		{name: "valid afternoon slot", input: "17:00"},
		{name: "midnight", input: "00:00"},
		{name: "end of day", input: "23:59"},
		{name: "missing leading zero", input: "8:00", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minute", input: "09:60", wantErr: true},
		{name: "not a time", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "seconds not allowed", input: "09:15:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	// Сравнение строк с ведущими нулями эквивалентно сравнению времени
	assert.True(t, TimeString("08:00").IsBefore("08:15"))
	assert.True(t, TimeString("09:45").IsBefore("10:00"))
	assert.True(t, TimeString("17:00").IsAfter("08:00"))
	assert.False(t, TimeString("12:30").IsBefore("12:30"))
	assert.False(t, TimeString("12:30").IsAfter("12:30"))
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("08:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 480, m)

	m, err = TimeString("17:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 1020, m)

	_, err = TimeString("not-a-time").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	next, err := TimeString("08:45").AddMinutes(15)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), next)

	next, err = TimeString("16:45").AddMinutes(15)
	require.NoError(t, err)
	assert.Equal(t, TimeString("17:00"), next)

	// Выход за пределы суток
	_, err = TimeString("23:50").AddMinutes(15)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("00:05").AddMinutes(-10)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("08:00").IsZero())
}
