package create_booking

import (
	"time"

	"github.com/m04kA/PGC-BookingService/internal/domain"
	createBooking "github.com/m04kA/PGC-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/PGC-BookingService/pkg/types"
)

// Player участник флайта в HTTP модели
type Player struct {
	Name             string `json:"name"`
	Handicap         int    `json:"handicap"`
	MembershipNumber *int64 `json:"membershipNumber,omitempty"` // nil для гостей
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	MembershipNumber int64    `json:"membershipNumber"`
	Date             string   `json:"date"`     // "2025-06-01"
	TimeSlot         string   `json:"timeSlot"` // "09:15"
	Players          []Player `json:"players"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64    `json:"id"`
	MembershipNumber int64    `json:"membershipNumber"`
	Date             string   `json:"date"`
	TimeSlot         string   `json:"timeSlot"`
	Players          []Player `json:"players"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим слот
	slot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	players := make([]domain.Player, len(r.Players))
	for i, p := range r.Players {
		players[i] = domain.Player{
			Name:             p.Name,
			Handicap:         p.Handicap,
			MembershipNumber: p.MembershipNumber,
		}
	}

	return &createBooking.Request{
		MembershipNumber: r.MembershipNumber,
		Date:             date,
		TimeSlot:         slot,
		Players:          players,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	players := make([]Player, len(resp.Players))
	for i, p := range resp.Players {
		players[i] = Player{
			Name:             p.Name,
			Handicap:         p.Handicap,
			MembershipNumber: p.MembershipNumber,
		}
	}

	return &BookingResponse{
		ID:               resp.ID,
		MembershipNumber: resp.MembershipNumber,
		Date:             resp.Date.Format(domain.DateFormat),
		TimeSlot:         resp.TimeSlot.String(),
		Players:          players,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
