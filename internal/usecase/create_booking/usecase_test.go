package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PGC-BookingService/internal/domain"
	"github.com/m04kA/PGC-BookingService/pkg/ptr"
	"github.com/m04kA/PGC-BookingService/pkg/types"
)

type mockBookingRepo struct {
	createFunc func(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	existsFunc func(ctx context.Context, membershipNumber int64, date time.Time) (bool, error)

	createCalls int
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, b)
	}
	created := *b
	created.ID = 1
	return &created, nil
}

func (m *mockBookingRepo) ExistsForMemberOnDate(ctx context.Context, membershipNumber int64, date time.Time) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, membershipNumber, date)
	}
	return false, nil
}

// mockTxManager выполняет функцию напрямую, без настоящей транзакции
type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *mockBookingRepo) *UseCase {
	return NewUseCase(repo, &mockTxManager{}, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		MembershipNumber: 101,
		Date:             time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot:         "09:00",
		Players: []domain.Player{
			{Name: "Alice", Handicap: 12, MembershipNumber: ptr.Ptr(int64(101))},
		},
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(101), resp.MembershipNumber)
	assert.Equal(t, types.TimeString("09:00"), resp.TimeSlot)
	assert.Equal(t, 1, repo.createCalls)
}

func TestExecute_TooManyPlayers(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.Players = []domain.Player{
		{Name: "P1"}, {Name: "P2"}, {Name: "P3"}, {Name: "P4"}, {Name: "P5"},
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooManyPlayers)
	assert.Zero(t, repo.createCalls, "rejected booking must not be persisted")
}

func TestExecute_FourPlayersAllowed(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.Players = []domain.Player{
		{Name: "P1"}, {Name: "P2"}, {Name: "P3"}, {Name: "P4"},
	}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
}

func TestExecute_EmptyFlightAllowed(t *testing.T) {
	// Нижняя граница состава не проверяется
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.Players = nil

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
}

func TestExecute_DuplicateDayRejectedRegardlessOfSlot(t *testing.T) {
	repo := &mockBookingRepo{
		existsFunc: func(ctx context.Context, membershipNumber int64, date time.Time) (bool, error) {
			return true, nil
		},
	}
	uc := newTestUseCase(repo)

	// Другой слот в тот же день - всё равно отказ
	req := validRequest()
	req.TimeSlot = "10:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMemberAlreadyBooked)
	assert.Zero(t, repo.createCalls)
}

func TestExecute_OffGridSlotRejected(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo)

	tests := []types.TimeString{"08:07", "07:45", "17:15", "23:00"}
	for _, slot := range tests {
		t.Run(string(slot), func(t *testing.T) {
			req := validRequest()
			req.TimeSlot = slot

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidTimeSlot)
		})
	}
	assert.Zero(t, repo.createCalls)
}

func TestExecute_ValidationOrder(t *testing.T) {
	// Лимит игроков проверяется раньше дубликата и принадлежности слота сетке:
	// заявка с 5 игроками, существующим бронированием и некорректным слотом
	// должна отказать именно по лимиту игроков
	repo := &mockBookingRepo{
		existsFunc: func(ctx context.Context, membershipNumber int64, date time.Time) (bool, error) {
			return true, nil
		},
	}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.TimeSlot = "08:07"
	req.Players = []domain.Player{
		{Name: "P1"}, {Name: "P2"}, {Name: "P3"}, {Name: "P4"}, {Name: "P5"},
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooManyPlayers)

	// Дубликат проверяется раньше принадлежности слота сетке
	req = validRequest()
	req.TimeSlot = "08:07"

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMemberAlreadyBooked)
}

func TestExecute_InvalidInput(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "zero membership number", mutate: func(req *Request) { req.MembershipNumber = 0 }},
		{name: "negative membership number", mutate: func(req *Request) { req.MembershipNumber = -1 }},
		{name: "zero date", mutate: func(req *Request) { req.Date = time.Time{} }},
		{name: "empty slot", mutate: func(req *Request) { req.TimeSlot = "" }},
		{name: "malformed slot", mutate: func(req *Request) { req.TimeSlot = "9am" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Zero(t, repo.createCalls)
}

func TestExecute_SecondDayAllowed(t *testing.T) {
	// Участник с бронированием на 2024-06-01 может забронировать на 2024-06-02
	bookedDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := &mockBookingRepo{
		existsFunc: func(ctx context.Context, membershipNumber int64, date time.Time) (bool, error) {
			return domain.IsSameDay(date, bookedDate), nil
		},
	}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.Date = time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
}
