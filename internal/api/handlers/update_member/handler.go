package update_member

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PGC-BookingService/internal/api/handlers"
	"github.com/m04kA/PGC-BookingService/internal/service/members"
	"github.com/m04kA/PGC-BookingService/internal/service/members/models"
)

const (
	msgInvalidMemberNumber = "некорректный номер членства"
	msgInvalidBody         = "некорректное тело запроса"
	msgInvalidInput        = "некорректные данные участника"
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

// Handle PUT /api/v1/members/{membershipNumber}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	membershipNumber, err := strconv.ParseInt(vars["membershipNumber"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /members/{n} - Invalid membership number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMemberNumber)
		return
	}

	var req models.UpdateMemberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /members/{n} - Invalid request body: member=%d, error=%v", membershipNumber, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	member, err := h.service.Update(r.Context(), membershipNumber, &req)
	if err != nil {
		switch {
		case errors.Is(err, members.ErrMemberNotFound):
			h.logger.Warn("PUT /members/{n} - Member not found: member=%d", membershipNumber)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, members.ErrInvalidInput):
			h.logger.Warn("PUT /members/{n} - Invalid input: member=%d, error=%v", membershipNumber, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /members/{n} - Failed to update member: member=%d, error=%v", membershipNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /members/{n} - Successfully updated member: member=%d", membershipNumber)
	handlers.RespondJSON(w, http.StatusOK, member)
}
