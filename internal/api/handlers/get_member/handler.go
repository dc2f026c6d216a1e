package get_member

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
	msgNotFound            = "участник клуба не найден"
)

type Handler struct {
	service MemberService
	logger  Logger
}

func NewHandler(service MemberService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/members/{membershipNumber}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	membershipNumber, err := strconv.ParseInt(vars["membershipNumber"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /members/{n} - Invalid membership number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMemberNumber)
		return
	}

	member, err := h.service.GetByID(r.Context(), membershipNumber)
	if err != nil {
		switch {
		case errors.Is(err, members.ErrMemberNotFound):
			h.logger.Warn("GET /members/{n} - Member not found: member=%d", membershipNumber)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /members/{n} - Failed to get member: member=%d, error=%v", membershipNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, member)
}
