package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/PGC-BookingService/internal/domain"
)

// UseCase use case для создания бронирования ти-тайма
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Порядок бизнес-проверок фиксирован: лимит игроков, затем дубликат на дату,
// затем принадлежность слота дневной сетке. Проверка дубликата и вставка
// выполняются в сериализуемой транзакции для предотвращения гонки данных.
//
// Занятость слота другими участниками здесь не проверяется: на один слот
// могут записаться несколько разных участников.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: member=%d, date=%s, slot=%s, players=%d",
		req.MembershipNumber, req.Date.Format(domain.DateFormat), req.TimeSlot, len(req.Players))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Лимит размера флайта
	if err := validatePlayerCount(req.Players); err != nil {
		uc.logger.Warn("CreateBooking: member=%d requested %d players", req.MembershipNumber, len(req.Players))
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Одно бронирование на участника в день
		exists, err := uc.bookingRepo.ExistsForMemberOnDate(txCtx, req.MembershipNumber, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check existing booking: %v", err)
			return fmt.Errorf("%w: failed to check existing booking: %v", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("CreateBooking: member=%d already has a booking on %s",
				req.MembershipNumber, req.Date.Format(domain.DateFormat))
			return ErrMemberAlreadyBooked
		}

		// 3.2. Слот должен входить в каноническую сетку ти-таймов
		if !domain.IsCanonicalTeeTime(req.TimeSlot) {
			uc.logger.Warn("CreateBooking: member=%d requested off-grid slot %s",
				req.MembershipNumber, req.TimeSlot)
			return ErrInvalidTimeSlot
		}

		// 3.3. Сохраняем бронирование, id назначает база
		booking := &domain.Booking{
			MembershipNumber: req.MembershipNumber,
			Date:             domain.DateOnly(req.Date),
			TimeSlot:         req.TimeSlot,
			Players:          req.Players,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for member=%d",
		result.ID, result.MembershipNumber)

	// Конвертируем в response
	return &Response{
		ID:               result.ID,
		MembershipNumber: result.MembershipNumber,
		Date:             result.Date,
		TimeSlot:         result.TimeSlot,
		Players:          result.Players,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}
