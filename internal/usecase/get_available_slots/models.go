package get_available_slots

import (
	"time"

	"github.com/m04kA/PGC-BookingService/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date  time.Time          // Дата, на которую запрашивались слоты
	Slots []types.TimeString // Свободные слоты в порядке сетки (по возрастанию времени)
}
