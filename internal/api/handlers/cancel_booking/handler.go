package cancel_booking

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PGC-BookingService/internal/api/handlers"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
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

// Handle DELETE /api/v1/bookings/{bookingId} и PATCH /api/v1/bookings/{bookingId}/cancel
// Отмена и удаление эквивалентны; отсутствующее бронирование - не ошибка,
// в обоих случаях возвращается 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s /bookings/{id} - Invalid booking ID: %v", r.Method, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Delete(r.Context(), bookingID); err != nil {
		h.logger.Error("%s /bookings/{id} - Failed to delete booking: booking_id=%d, error=%v", r.Method, bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("%s /bookings/{id} - Booking removed: booking_id=%d", r.Method, bookingID)
	w.WriteHeader(http.StatusNoContent)
}
