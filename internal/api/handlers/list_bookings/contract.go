package list_bookings

import (
	"context"
	"time"

	"github.com/m04kA/PGC-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetAll(ctx context.Context) (*models.BookingListResponse, error)
	GetForDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
