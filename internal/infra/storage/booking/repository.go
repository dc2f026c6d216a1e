package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/PGC-BookingService/internal/domain"
	"github.com/m04kA/PGC-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PGC-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/PGC-BookingService/pkg/types"
)

// Repository репозиторий для работы с бронированиями
// Список игроков хранится сериализованным в колонке player_details (JSON);
// кодирование/декодирование выполняется только на границе хранилища
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование, id назначает база
// Если в контексте передана активная транзакция (через context.Value), использует её
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	playerDetails, err := domain.EncodePlayers(b.Players)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - encode players: %v", ErrEncodePlayers, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"membership_number",
			"booking_date",
			"time_slot",
			"player_details",
		).
		Values(
			b.MembershipNumber,
			domain.DateOnly(b.Date),
			b.TimeSlot,
			playerDetails,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := bookingSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	b, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetAll получает все бронирования без гарантированного порядка
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := bookingSelect().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByDate получает бронирования на дату, отсортированные по времени слота
// Сравнение идет только по календарной дате
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := bookingSelect().
		Where(squirrel.Eq{"booking_date": domain.DateOnly(date)}).
		OrderBy("time_slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByMember получает все бронирования участника клуба
func (r *Repository) GetByMember(ctx context.Context, membershipNumber int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := bookingSelect().
		Where(squirrel.Eq{"membership_number": membershipNumber}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByMember - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMember - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetBookedSlots получает занятые слоты на дату
func (r *Repository) GetBookedSlots(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("time_slot").
		From("bookings").
		Where(squirrel.Eq{"booking_date": domain.DateOnly(date)}).
		OrderBy("time_slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]types.TimeString, 0)
	for rows.Next() {
		var slot types.TimeString
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: GetBookedSlots - scan time_slot: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// ExistsForMemberOnDate проверяет, есть ли у участника бронирование на дату
// Внутри транзакции блокирует найденную строку (FOR UPDATE), чтобы параллельный
// запрос того же участника не прошел проверку одновременно
func (r *Repository) ExistsForMemberOnDate(ctx context.Context, membershipNumber int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{
			"membership_number": membershipNumber,
			"booking_date":      domain.DateOnly(date),
		}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsForMemberOnDate - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsForMemberOnDate - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// Update полностью замещает запись бронирования по ID
func (r *Repository) Update(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	playerDetails, err := domain.EncodePlayers(b.Players)
	if err != nil {
		return fmt.Errorf("%w: Update - encode players: %v", ErrEncodePlayers, err)
	}

	query, args, err := psqlbuilder.Update("bookings").
		Set("membership_number", b.MembershipNumber).
		Set("booking_date", domain.DateOnly(b.Date)).
		Set("time_slot", b.TimeSlot).
		Set("player_details", playerDetails).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// bookingSelect возвращает базовый SELECT по таблице bookings
func bookingSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"membership_number",
		"booking_date",
		"time_slot",
		"player_details",
		"created_at",
		"updated_at",
	).From("bookings")
}

// scanBooking сканирует одну строку в бронирование
func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var b domain.Booking
	var playerDetails string
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&b.ID,
		&b.MembershipNumber,
		&b.Date,
		&b.TimeSlot,
		&playerDetails,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	players, err := domain.DecodePlayers(playerDetails)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodePlayers, err)
	}

	b.Players = players
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
