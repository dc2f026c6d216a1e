package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/PGC-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/PGC-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgTooManyPlayers     = "во флайте может быть не больше 4 игроков"
	msgAlreadyBooked      = "участник может забронировать только один ти-тайм в день"
	msgInvalidTimeSlot    = "слот не входит в дневную сетку ти-таймов"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrTooManyPlayers):
			h.logger.Warn("POST /bookings - Too many players: member=%d", req.MembershipNumber)
			handlers.RespondBadRequest(w, msgTooManyPlayers)

		case errors.Is(err, createBooking.ErrMemberAlreadyBooked):
			h.logger.Warn("POST /bookings - Member already booked: member=%d, date=%s",
				req.MembershipNumber, req.Date)
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: member=%d, slot=%s",
				req.MembershipNumber, req.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: member=%d, error=%v", req.MembershipNumber, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: member=%d, error=%v",
				req.MembershipNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, member=%d",
		result.ID, req.MembershipNumber)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
