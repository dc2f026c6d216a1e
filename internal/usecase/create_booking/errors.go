package create_booking

import "errors"

var (
	// ErrTooManyPlayers возвращается, когда в заявке больше четырех игроков
	ErrTooManyPlayers = errors.New("create_booking: maximum 4 players allowed per tee time")

	// ErrMemberAlreadyBooked возвращается, когда у участника уже есть бронирование на эту дату
	ErrMemberAlreadyBooked = errors.New("create_booking: members can only book one tee time per day")

	// ErrInvalidTimeSlot возвращается, когда слот не входит в дневную сетку ти-таймов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid tee time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
