package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/PGC-BookingService/internal/domain"
)

// UseCase use case для получения свободных слотов ти-таймов на дату
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения свободных слотов
// Операция только читает хранилище и ничего не изменяет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем занятые слоты на дату (сравнение только по календарной дате)
	booked, err := uc.bookingRepo.GetBookedSlots(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}

	// 3. Вычитаем занятые слоты из дневной сетки, сохраняя порядок сетки
	available := subtractBookedSlots(dailyGrid(), booked)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available on %s",
		len(available), domain.TeeTimeSlotsPerDay, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: available,
	}, nil
}
