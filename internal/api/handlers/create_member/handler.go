package create_member

import (
	"errors"
	"net/http"

	"github.com/m04kA/PGC-BookingService/internal/api/handlers"
	"github.com/m04kA/PGC-BookingService/internal/service/members"
	"github.com/m04kA/PGC-BookingService/internal/service/members/models"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidInput = "некорректные данные участника"
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

// Handle POST /api/v1/members
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMemberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /members - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	member, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, members.ErrInvalidInput):
			h.logger.Warn("POST /members - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /members - Failed to create member: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /members - Successfully created member: member=%d", member.MembershipNumber)
	handlers.RespondJSON(w, http.StatusCreated, member)
}
