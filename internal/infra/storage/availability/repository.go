package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/VRM-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий календаря доступности
// Одна строка таблицы = один день одного объявления со статусом
// available/blocked/booked; отсутствие строки означает "не задано"
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// HasCalendar проверяет, инициализирован ли календарь объявления
func (r *Repository) HasCalendar(ctx context.Context, propertyID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("availability_calendar").
		Where(squirrel.Eq{"property_id": propertyID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasCalendar - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasCalendar - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// Seed заполняет календарь статусом available на horizonDays дней вперёд
// начиная с from (включительно). Существующие дни не перезаписываются
func (r *Repository) Seed(ctx context.Context, propertyID int64, from time.Time, horizonDays int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("availability_calendar").
		Columns("property_id", "day", "status")

	from = domain.DateOnly(from)
	for i := 0; i < horizonDays; i++ {
		insertBuilder = insertBuilder.Values(propertyID, from.AddDate(0, 0, i), domain.DateAvailable)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (property_id, day) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Seed - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Seed - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetMonth возвращает все записанные дни календаря внутри месяца
// Дни без записи не возвращаются - для гостя они "недоступны",
// для хоста "не заданы"
func (r *Repository) GetMonth(ctx context.Context, propertyID int64, monthStart, monthEnd time.Time) ([]domain.CalendarDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("property_id", "day", "status").
		From("availability_calendar").
		Where(squirrel.Eq{"property_id": propertyID}).
		Where(squirrel.GtOrEq{"day": monthStart}).
		Where(squirrel.Lt{"day": monthEnd}).
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetMonth - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetMonth - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCalendarDays(rows)
}

// GetRange возвращает записанные дни в диапазоне [start, end] включительно
// В транзакции блокирует строки диапазона (FOR UPDATE): проверка
// доступности и последующая запись booked идут одной критической секцией
func (r *Repository) GetRange(ctx context.Context, propertyID int64, start, end time.Time) ([]domain.CalendarDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("property_id", "day", "status").
		From("availability_calendar").
		Where(squirrel.Eq{"property_id": propertyID}).
		Where(squirrel.GtOrEq{"day": domain.DateOnly(start)}).
		Where(squirrel.LtOrEq{"day": domain.DateOnly(end)}).
		OrderBy("day ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCalendarDays(rows)
}

// GetDate возвращает статус одного дня
// Отсутствие записи возвращается как (nil, nil)
func (r *Repository) GetDate(ctx context.Context, propertyID int64, day time.Time) (*domain.CalendarDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("property_id", "day", "status").
		From("availability_calendar").
		Where(squirrel.Eq{
			"property_id": propertyID,
			"day":         domain.DateOnly(day),
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDate - build select query: %v", ErrBuildQuery, err)
	}

	var cd domain.CalendarDay
	err = executor.QueryRowContext(ctx, query, args...).Scan(&cd.PropertyID, &cd.Day, &cd.Status)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDate - scan row: %v", ErrScanRow, err)
	}

	return &cd, nil
}

// SetDate безусловно выставляет статус одного дня (upsert)
func (r *Repository) SetDate(ctx context.Context, propertyID int64, day time.Time, status domain.DateStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_calendar").
		Columns("property_id", "day", "status").
		Values(propertyID, domain.DateOnly(day), status).
		Suffix("ON CONFLICT (property_id, day) DO UPDATE SET status = EXCLUDED.status").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetDate - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetDate - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// MarkRangeBooked выставляет booked каждому дню диапазона [start, end]
// включительно, независимо от прежнего статуса. День выезда тоже
// помечается - диапазоны бронирования включают обе границы
func (r *Repository) MarkRangeBooked(ctx context.Context, propertyID int64, start, end time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("availability_calendar").
		Columns("property_id", "day", "status")

	for _, day := range domain.DaysInRange(start, end) {
		insertBuilder = insertBuilder.Values(propertyID, day, domain.DateBooked)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (property_id, day) DO UPDATE SET status = EXCLUDED.status").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRangeBooked - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkRangeBooked - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// ReleaseRange удаляет дни диапазона [start, end] включительно
// Дни возвращаются в состояние "не задано", а не в available
func (r *Repository) ReleaseRange(ctx context.Context, propertyID int64, start, end time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_calendar").
		Where(squirrel.Eq{"property_id": propertyID}).
		Where(squirrel.GtOrEq{"day": domain.DateOnly(start)}).
		Where(squirrel.LtOrEq{"day": domain.DateOnly(end)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReleaseRange - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReleaseRange - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// scanCalendarDays сканирует результаты запроса в слайс дней календаря
func scanCalendarDays(rows *sql.Rows) ([]domain.CalendarDay, error) {
	days := make([]domain.CalendarDay, 0)

	for rows.Next() {
		var cd domain.CalendarDay
		if err := rows.Scan(&cd.PropertyID, &cd.Day, &cd.Status); err != nil {
			return nil, fmt.Errorf("%w: scanCalendarDays - scan row: %v", ErrScanRow, err)
		}
		days = append(days, cd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCalendarDays - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}
