package bookings

import (
	"context"
	"time"

	"github.com/m04kA/PGC-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetAll(ctx context.Context) ([]*domain.Booking, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	GetByMember(ctx context.Context, membershipNumber int64) ([]*domain.Booking, error)
	ExistsForMemberOnDate(ctx context.Context, membershipNumber int64, date time.Time) (bool, error)
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
