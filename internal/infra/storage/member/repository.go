package member

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/PGC-BookingService/internal/domain"
	"github.com/m04kA/PGC-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PGC-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с участниками клуба
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория участников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового участника, membership_number назначает база
func (r *Repository) Create(ctx context.Context, m *domain.Member) (*domain.Member, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("members").
		Columns(
			"name",
			"email",
			"gender",
			"handicap",
		).
		Values(
			m.Name,
			m.Email,
			m.Gender,
			m.Handicap,
		).
		Suffix("RETURNING membership_number, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.MembershipNumber,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return m, nil
}

// GetByID получает участника по номеру членства
func (r *Repository) GetByID(ctx context.Context, membershipNumber int64) (*domain.Member, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := memberSelect().
		Where(squirrel.Eq{"membership_number": membershipNumber}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var m domain.Member
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.MembershipNumber,
		&m.Name,
		&m.Email,
		&m.Gender,
		&m.Handicap,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan member: %v", ErrScanRow, err)
	}

	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return &m, nil
}

// GetAll получает всех участников клуба
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Member, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := memberSelect().
		OrderBy("membership_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]*domain.Member, 0)
	for rows.Next() {
		var m domain.Member
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&m.MembershipNumber,
			&m.Name,
			&m.Email,
			&m.Gender,
			&m.Handicap,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}

		m.CreatedAt = createdAt.Time
		m.UpdatedAt = updatedAt.Time

		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return members, nil
}

// Update полностью замещает запись участника по номеру членства
func (r *Repository) Update(ctx context.Context, m *domain.Member) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("members").
		Set("name", m.Name).
		Set("email", m.Email).
		Set("gender", m.Gender).
		Set("handicap", m.Handicap).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"membership_number": m.MembershipNumber}).
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
		return ErrMemberNotFound
	}

	return nil
}

// Delete удаляет участника по номеру членства
// Зависимые бронирования удаляет каскадный внешний ключ
func (r *Repository) Delete(ctx context.Context, membershipNumber int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("members").
		Where(squirrel.Eq{"membership_number": membershipNumber}).
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
		return ErrMemberNotFound
	}

	return nil
}

// memberSelect возвращает базовый SELECT по таблице members
func memberSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"membership_number",
		"name",
		"email",
		"gender",
		"handicap",
		"created_at",
		"updated_at",
	).From("members")
}
