package list_bookings

import (
	"net/http"
	"time"

	"github.com/m04kA/PGC-BookingService/internal/api/handlers"
	"github.com/m04kA/PGC-BookingService/internal/domain"
	"github.com/m04kA/PGC-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings[?date=YYYY-MM-DD]
// Без параметра date возвращает все бронирования;
// с параметром - бронирования на дату по возрастанию времени слота
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	var (
		result *models.BookingListResponse
		err    error
	)

	if dateStr == "" {
		result, err = h.service.GetAll(r.Context())
	} else {
		var date time.Time
		date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		result, err = h.service.GetForDate(r.Context(), date)
	}

	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: date=%q, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
