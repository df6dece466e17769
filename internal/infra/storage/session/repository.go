package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/pkg/dbmetrics"
	"github.com/avdeez/Shop-SchedulerService/pkg/psqlbuilder"
	"github.com/avdeez/Shop-SchedulerService/pkg/types"
)

// sessionColumns колонки таблицы edit_sessions в порядке сканирования
var sessionColumns = []string{
	"id",
	"token",
	"shop_username",
	"phone_number",
	"appointment_id",
	"client_name",
	"client_email",
	"state",
	"original_date",
	"original_time",
	"original_services",
	"edit_date",
	"edit_time",
	"edit_services",
	"changed_date",
	"changed_time",
	"changed_services",
	"created_at",
	"updated_at",
}

// Repository репозиторий сессий редактирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую сессию редактирования.
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, s *domain.EditSession) (*domain.EditSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	originalServices, err := encodeServices(s.OriginalServices)
	if err != nil {
		return nil, fmt.Errorf("Create - original services: %w", err)
	}
	editServices, err := encodeServices(s.EditServices)
	if err != nil {
		return nil, fmt.Errorf("Create - edit services: %w", err)
	}

	query, args, err := psqlbuilder.Insert("edit_sessions").
		Columns(
			"token",
			"shop_username",
			"phone_number",
			"appointment_id",
			"client_name",
			"client_email",
			"state",
			"original_date",
			"original_time",
			"original_services",
			"edit_date",
			"edit_time",
			"edit_services",
		).
		Values(
			s.Token,
			s.ShopUsername,
			s.PhoneNumber,
			s.AppointmentID,
			s.ClientName,
			s.ClientEmail,
			s.State,
			s.OriginalDate,
			s.OriginalTime,
			originalServices,
			s.EditDate,
			s.EditTime,
			editServices,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByToken получает сессию по токену
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.EditSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sessionColumns...).
		From("edit_sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	return scanSession(row)
}

// Update сохраняет изменяемые поля сессии (рабочая копия, снимок
// изменений, состояние). Исходные поля заявки после создания не трогаем
func (r *Repository) Update(ctx context.Context, s *domain.EditSession) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	editServices, err := encodeServices(s.EditServices)
	if err != nil {
		return fmt.Errorf("Update - edit services: %w", err)
	}
	changedServices, err := encodeServicesNullable(s.ChangedServices)
	if err != nil {
		return fmt.Errorf("Update - changed services: %w", err)
	}

	query, args, err := psqlbuilder.Update("edit_sessions").
		Set("state", s.State).
		Set("edit_date", s.EditDate).
		Set("edit_time", s.EditTime).
		Set("edit_services", editServices).
		Set("changed_date", s.ChangedDate).
		Set("changed_time", s.ChangedTime).
		Set("changed_services", changedServices).
		Where(squirrel.Eq{"token": s.Token}).
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
		return ErrSessionNotFound
	}

	return nil
}

// DeleteOlderThan удаляет завершенные и брошенные сессии старше cutoff.
// Используется фоновой уборкой
func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("edit_sessions").
		Where(squirrel.Lt{"updated_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// scanSession сканирует строку edit_sessions в доменную модель
func scanSession(row *sql.Row) (*domain.EditSession, error) {
	var (
		s                domain.EditSession
		originalServices []byte
		editServices     []byte
		changedServices  []byte
		editTime         types.TimeString
		changedDate      sql.NullTime
		changedTime      sql.NullString
		createdAt        sql.NullTime
		updatedAt        sql.NullTime
	)

	err := row.Scan(
		&s.ID,
		&s.Token,
		&s.ShopUsername,
		&s.PhoneNumber,
		&s.AppointmentID,
		&s.ClientName,
		&s.ClientEmail,
		&s.State,
		&s.OriginalDate,
		&s.OriginalTime,
		&originalServices,
		&s.EditDate,
		&editTime,
		&editServices,
		&changedDate,
		&changedTime,
		&changedServices,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}

	s.EditTime = editTime

	if s.OriginalServices, err = decodeServices(originalServices); err != nil {
		return nil, err
	}
	if s.EditServices, err = decodeServices(editServices); err != nil {
		return nil, err
	}
	if s.ChangedServices, err = decodeServices(changedServices); err != nil {
		return nil, err
	}

	if changedDate.Valid {
		d := changedDate.Time
		s.ChangedDate = &d
	}
	if changedTime.Valid {
		t := types.TimeString(changedTime.String)
		s.ChangedTime = &t
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
