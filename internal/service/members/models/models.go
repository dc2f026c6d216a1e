package models

import (
	"time"

	"github.com/m04kA/PGC-BookingService/internal/domain"
)

// Request модели

// CreateMemberRequest запрос на регистрацию участника
// Gender свободный текст, не перечисление
type CreateMemberRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Gender   string `json:"gender" validate:"required"`
	Handicap int    `json:"handicap" validate:"min=0,max=54"`
}

// ToDomainMember конвертирует request в domain модель
func (r *CreateMemberRequest) ToDomainMember() *domain.Member {
	return &domain.Member{
		Name:     r.Name,
		Email:    r.Email,
		Gender:   r.Gender,
		Handicap: r.Handicap,
	}
}

// UpdateMemberRequest запрос на обновление профиля участника
type UpdateMemberRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Gender   string `json:"gender" validate:"required"`
	Handicap int    `json:"handicap" validate:"min=0,max=54"`
}

// ToDomainMember конвертирует request в domain модель
func (r *UpdateMemberRequest) ToDomainMember(membershipNumber int64) *domain.Member {
	return &domain.Member{
		MembershipNumber: membershipNumber,
		Name:             r.Name,
		Email:            r.Email,
		Gender:           r.Gender,
		Handicap:         r.Handicap,
	}
}

// Response модели

// MemberResponse ответ с данными участника
type MemberResponse struct {
	MembershipNumber int64  `json:"membershipNumber"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Gender           string `json:"gender"`
	Handicap         int    `json:"handicap"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MemberListResponse ответ со списком участников
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

// Методы конвертации

// FromDomainMember конвертирует domain модель в DTO
func FromDomainMember(m *domain.Member) *MemberResponse {
	if m == nil {
		return nil
	}

	return &MemberResponse{
		MembershipNumber: m.MembershipNumber,
		Name:             m.Name,
		Email:            m.Email,
		Gender:           m.Gender,
		Handicap:         m.Handicap,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromDomainMemberList конвертирует список domain моделей в DTO
func FromDomainMemberList(members []*domain.Member) *MemberListResponse {
	result := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		result = append(result, *FromDomainMember(m))
	}
	return &MemberListResponse{Members: result}
}
