package get_member_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PGC-BookingService/internal/api/handlers"
	"github.com/m04kA/PGC-BookingService/internal/service/members"
)

const (
	msgInvalidMemberNumber = "некорректный номер членства"
	msgMemberNotFound      = "участник клуба не найден"
)

type Handler struct {
	bookingService BookingService
	memberService  MemberService
	logger         Logger
}

func NewHandler(bookingService BookingService, memberService MemberService, logger Logger) *Handler {
	return &Handler{
		bookingService: bookingService,
		memberService:  memberService,
		logger:         logger,
	}
}

// Handle GET /api/v1/members/{membershipNumber}/bookings
// Для несуществующего участника возвращает 404, а не пустой список
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	membershipNumber, err := strconv.ParseInt(vars["membershipNumber"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /members/{n}/bookings - Invalid membership number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMemberNumber)
		return
	}

	if _, err := h.memberService.GetByID(r.Context(), membershipNumber); err != nil {
		switch {
		case errors.Is(err, members.ErrMemberNotFound):
			h.logger.Warn("GET /members/{n}/bookings - Member not found: member=%d", membershipNumber)
			handlers.RespondNotFound(w, msgMemberNotFound)

		default:
			h.logger.Error("GET /members/{n}/bookings - Failed to check member: member=%d, error=%v", membershipNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	result, err := h.bookingService.GetByMember(r.Context(), membershipNumber)
	if err != nil {
		h.logger.Error("GET /members/{n}/bookings - Failed to get bookings: member=%d, error=%v", membershipNumber, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
