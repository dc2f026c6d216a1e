package members

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	memberRepo "github.com/m04kA/PGC-BookingService/internal/infra/storage/member"
	"github.com/m04kA/PGC-BookingService/internal/service/members/models"
)

// Service сервис для работы с участниками клуба
type Service struct {
	memberRepo MemberRepository
	validate   *validator.Validate
	logger     Logger
}

// NewService создает новый экземпляр сервиса участников
func NewService(memberRepo MemberRepository, logger Logger) *Service {
	return &Service{
		memberRepo: memberRepo,
		validate:   validator.New(),
		logger:     logger,
	}
}

// Create регистрирует нового участника
// Номер членства назначает хранилище
func (s *Service) Create(ctx context.Context, req *models.CreateMemberRequest) (*models.MemberResponse, error) {
	s.logger.Info("Create: registering member name=%q", req.Name)

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed for member name=%q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.memberRepo.Create(ctx, req.ToDomainMember())
	if err != nil {
		s.logger.Error("Create: repository error for member name=%q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully registered member=%d", created.MembershipNumber)
	return models.FromDomainMember(created), nil
}

// GetByID получает участника по номеру членства
func (s *Service) GetByID(ctx context.Context, membershipNumber int64) (*models.MemberResponse, error) {
	s.logger.Info("GetByID: fetching member=%d", membershipNumber)

	member, err := s.memberRepo.GetByID(ctx, membershipNumber)
	if err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			s.logger.Warn("GetByID: member=%d not found", membershipNumber)
			return nil, ErrMemberNotFound
		}
		s.logger.Error("GetByID: repository error for member=%d: %v", membershipNumber, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMember(member), nil
}

// GetAll получает всех участников клуба
func (s *Service) GetAll(ctx context.Context) (*models.MemberListResponse, error) {
	s.logger.Info("GetAll: fetching all members")

	members, err := s.memberRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: fetched %d members", len(members))
	return models.FromDomainMemberList(members), nil
}

// Update обновляет профиль участника (полное замещение записи)
func (s *Service) Update(ctx context.Context, membershipNumber int64, req *models.UpdateMemberRequest) (*models.MemberResponse, error) {
	s.logger.Info("Update: updating member=%d", membershipNumber)

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed for member=%d: %v", membershipNumber, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	member := req.ToDomainMember(membershipNumber)

	if err := s.memberRepo.Update(ctx, member); err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			s.logger.Warn("Update: member=%d not found", membershipNumber)
			return nil, ErrMemberNotFound
		}
		s.logger.Error("Update: repository error for member=%d: %v", membershipNumber, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated member=%d", membershipNumber)
	return models.FromDomainMember(member), nil
}

// Delete удаляет участника вместе со всеми его бронированиями
// Каскадное удаление бронирований выполняет внешний ключ в БД
func (s *Service) Delete(ctx context.Context, membershipNumber int64) error {
	s.logger.Info("Delete: deleting member=%d", membershipNumber)

	if err := s.memberRepo.Delete(ctx, membershipNumber); err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			s.logger.Warn("Delete: member=%d not found", membershipNumber)
			return ErrMemberNotFound
		}
		s.logger.Error("Delete: repository error for member=%d: %v", membershipNumber, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted member=%d and their bookings", membershipNumber)
	return nil
}
