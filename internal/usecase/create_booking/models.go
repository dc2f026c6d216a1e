package create_booking

import (
	"time"

	"github.com/m04kA/PGC-BookingService/internal/domain"
	"github.com/m04kA/PGC-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	MembershipNumber int64            // Номер членства участника
	Date             time.Time        // Дата бронирования (без времени)
	TimeSlot         types.TimeString // Слот ти-тайма (например, "09:15")
	Players          []domain.Player  // Состав флайта (1-4 игрока, гости без номера членства)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID               int64            // ID созданного бронирования
	MembershipNumber int64            // Номер членства
	Date             time.Time        // Дата бронирования
	TimeSlot         types.TimeString // Слот ти-тайма
	Players          []domain.Player  // Состав флайта

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
