package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/PGC-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetBookedSlots получает занятые слоты на конкретную дату
	GetBookedSlots(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
