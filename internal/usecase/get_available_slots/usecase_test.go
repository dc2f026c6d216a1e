package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PGC-BookingService/internal/domain"
	"github.com/m04kA/PGC-BookingService/pkg/types"
)

type mockBookingRepo struct {
	getBookedSlotsFunc func(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

func (m *mockBookingRepo) GetBookedSlots(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	if m.getBookedSlotsFunc != nil {
		return m.getBookedSlotsFunc(ctx, date)
	}
	return nil, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testDate() time.Time {
	return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
}

func TestExecute_EmptyDay(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	// В пустой день доступна вся сетка
	assert.Len(t, resp.Slots, domain.TeeTimeSlotsPerDay)
	assert.Equal(t, domain.GenerateTeeTimeSlots(), resp.Slots)
}

func TestExecute_BookedSlotsExcluded(t *testing.T) {
	booked := []types.TimeString{"08:00", "09:15", "17:00"}
	uc := NewUseCase(&mockBookingRepo{
		getBookedSlotsFunc: func(ctx context.Context, date time.Time) ([]types.TimeString, error) {
			return booked, nil
		},
	}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, domain.TeeTimeSlotsPerDay-len(booked))
	for _, b := range booked {
		assert.NotContains(t, resp.Slots, b)
	}

	// Результат - подмножество сетки в порядке сетки
	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i-1].IsBefore(resp.Slots[i]))
	}
	for _, s := range resp.Slots {
		assert.True(t, domain.IsCanonicalTeeTime(s))
	}
}

func TestExecute_DuplicateBookedSlots(t *testing.T) {
	// Несколько бронирований на один слот занимают его один раз
	uc := NewUseCase(&mockBookingRepo{
		getBookedSlotsFunc: func(ctx context.Context, date time.Time) ([]types.TimeString, error) {
			return []types.TimeString{"10:00", "10:00", "10:00"}, nil
		},
	}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, domain.TeeTimeSlotsPerDay-1)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
}

func TestExecute_FullyBookedDay(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{
		getBookedSlotsFunc: func(ctx context.Context, date time.Time) ([]types.TimeString, error) {
			return domain.GenerateTeeTimeSlots(), nil
		},
	}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ZeroDate(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{
		getBookedSlotsFunc: func(ctx context.Context, date time.Time) ([]types.TimeString, error) {
			return nil, errors.New("connection refused")
		},
	}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSubtractBookedSlots_PreservesGridOrder(t *testing.T) {
	grid := []types.TimeString{"08:00", "08:15", "08:30", "08:45"}
	booked := []types.TimeString{"08:15"}

	got := subtractBookedSlots(grid, booked)
	assert.Equal(t, []types.TimeString{"08:00", "08:30", "08:45"}, got)

	// Занятые слоты вне сетки игнорируются
	got = subtractBookedSlots(grid, []types.TimeString{"12:00"})
	assert.Equal(t, grid, got)
}
