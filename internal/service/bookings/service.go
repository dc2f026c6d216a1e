package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PGC-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PGC-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/PGC-BookingService/internal/service/bookings/models"
)

// Service сервис для чтения, обновления и удаления бронирований
// Создание бронирования живет в usecase create_booking, где применяются
// все бизнес-проверки
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetAll получает все бронирования без гарантированного порядка
func (s *Service) GetAll(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("GetAll: fetching all bookings")

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetForDate получает бронирования на дату, по возрастанию времени слота
// Время суток на переданной дате игнорируется
func (s *Service) GetForDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	s.logger.Info("GetForDate: fetching bookings for date=%s", date.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetForDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetForDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetForDate: fetched %d bookings for date=%s", len(bookings), date.Format(domain.DateFormat))
	return models.FromDomainBookingList(bookings), nil
}

// GetByMember получает все бронирования участника клуба
func (s *Service) GetByMember(ctx context.Context, membershipNumber int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetByMember: fetching bookings for member=%d", membershipNumber)

	bookings, err := s.bookingRepo.GetByMember(ctx, membershipNumber)
	if err != nil {
		s.logger.Error("GetByMember: repository error for member=%d: %v", membershipNumber, err)
		return nil, fmt.Errorf("%w: GetByMember - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByMember: fetched %d bookings for member=%d", len(bookings), membershipNumber)
	return models.FromDomainBookingList(bookings), nil
}

// MemberHasBookingOnDate проверяет, есть ли у участника бронирование на дату
// Используется UI для предварительной проверки перед созданием бронирования
func (s *Service) MemberHasBookingOnDate(ctx context.Context, membershipNumber int64, date time.Time) (bool, error) {
	exists, err := s.bookingRepo.ExistsForMemberOnDate(ctx, membershipNumber, date)
	if err != nil {
		s.logger.Error("MemberHasBookingOnDate: repository error for member=%d: %v", membershipNumber, err)
		return false, fmt.Errorf("%w: MemberHasBookingOnDate - repository error: %v", ErrInternal, err)
	}
	return exists, nil
}

// Update полностью замещает бронирование по ID
// Повторно проверяется только лимит игроков; дубликат на дату и принадлежность
// слота сетке при обновлении не перепроверяются
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%d", id)

	booking, err := req.ToDomainBooking(id)
	if err != nil {
		s.logger.Warn("Update: invalid request for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Единственная бизнес-проверка на обновлении
	if booking.HasTooManyPlayers() {
		s.logger.Warn("Update: booking id=%d has %d players", id, booking.PlayerCount())
		return nil, ErrTooManyPlayers
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Delete удаляет бронирование по ID
// Отсутствующее бронирование не считается ошибкой; исторические операции
// удаления и отмены имеют одинаковую семантику и обслуживаются этим методом
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Info("Delete: booking id=%d not found, nothing to delete", id)
			return nil
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}
