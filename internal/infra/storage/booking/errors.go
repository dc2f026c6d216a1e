package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrEncodePlayers возвращается при ошибке сериализации списка игроков
	ErrEncodePlayers = errors.New("booking.repository: failed to encode players")

	// ErrDecodePlayers возвращается при ошибке разбора сохраненного списка игроков
	ErrDecodePlayers = errors.New("booking.repository: failed to decode players")
)
