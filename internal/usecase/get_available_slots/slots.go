package get_available_slots

import (
	"github.com/m04kA/PGC-BookingService/internal/domain"
	"github.com/m04kA/PGC-BookingService/pkg/types"
)

// subtractBookedSlots возвращает слоты сетки, не входящие в список занятых
// Порядок сетки сохраняется; дубликаты в booked на результат не влияют
func subtractBookedSlots(grid []types.TimeString, booked []types.TimeString) []types.TimeString {
	taken := make(map[types.TimeString]struct{}, len(booked))
	for _, slot := range booked {
		taken[slot] = struct{}{}
	}

	available := make([]types.TimeString, 0, len(grid))
	for _, slot := range grid {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}

	return available
}

// dailyGrid возвращает каноническую сетку ти-таймов
// Сетка не зависит от календарной даты
func dailyGrid() []types.TimeString {
	return domain.GenerateTeeTimeSlots()
}
