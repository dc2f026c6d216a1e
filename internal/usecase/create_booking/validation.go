package create_booking

import (
	"fmt"

	"github.com/m04kA/PGC-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Бизнес-проверки (лимит игроков, дубликат на дату, принадлежность слота сетке)
// выполняются отдельно в Execute в строго заданном порядке
func validateRequest(req *Request) error {
	if req.MembershipNumber <= 0 {
		return fmt.Errorf("%w: membershipNumber must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что слот указан
	if req.TimeSlot.IsZero() {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.TimeSlot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeSlot format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validatePlayerCount проверяет лимит размера флайта
// Нижняя граница не проверяется: пустой состав допускается
func validatePlayerCount(players []domain.Player) error {
	if len(players) > domain.MaxPlayersPerBooking {
		return ErrTooManyPlayers
	}
	return nil
}
