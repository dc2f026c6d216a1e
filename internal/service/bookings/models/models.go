package models

import (
	"time"

	"github.com/m04kA/PGC-BookingService/internal/domain"
	"github.com/m04kA/PGC-BookingService/pkg/types"
)

// Request модели

// UpdateBookingRequest запрос на полное замещение бронирования
type UpdateBookingRequest struct {
	MembershipNumber int64    `json:"membershipNumber"`
	Date             string   `json:"date"`     // "2025-06-01"
	TimeSlot         string   `json:"timeSlot"` // "09:15"
	Players          []Player `json:"players"`
}

// ToDomainBooking конвертирует request в domain модель
func (r *UpdateBookingRequest) ToDomainBooking(id int64) (*domain.Booking, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

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

	return &domain.Booking{
		ID:               id,
		MembershipNumber: r.MembershipNumber,
		Date:             date,
		TimeSlot:         slot,
		Players:          players,
	}, nil
}

// Response модели

// Player участник флайта в DTO бронирования
type Player struct {
	Name             string `json:"name"`
	Handicap         int    `json:"handicap"`
	MembershipNumber *int64 `json:"membershipNumber,omitempty"` // nil для гостей
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID               int64    `json:"id"`
	MembershipNumber int64    `json:"membershipNumber"`
	Date             string   `json:"date"`     // "2025-06-01"
	TimeSlot         string   `json:"timeSlot"` // "09:15"
	Players          []Player `json:"players"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	players := make([]Player, len(b.Players))
	for i, p := range b.Players {
		players[i] = Player{
			Name:             p.Name,
			Handicap:         p.Handicap,
			MembershipNumber: p.MembershipNumber,
		}
	}

	return &BookingResponse{
		ID:               b.ID,
		MembershipNumber: b.MembershipNumber,
		Date:             b.Date.Format(domain.DateFormat),
		TimeSlot:         b.TimeSlot.String(),
		Players:          players,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}
