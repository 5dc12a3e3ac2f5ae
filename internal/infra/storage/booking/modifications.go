package booking

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

var modificationColumns = []string{
	"id",
	"booking_id",
	"requested_check_in",
	"requested_check_out",
	"requested_guests",
	"reason",
	"status",
	"denial_reason",
	"created_at",
	"resolved_at",
}

// UpsertModification сохраняет запрос на изменение бронирования
// У бронирования может быть только один активный запрос: предыдущий
// pending-запрос удаляется перед вставкой нового
func (r *Repository) UpsertModification(ctx context.Context, mod *domain.ModificationRequest) (*domain.ModificationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("modification_requests").
		Where(squirrel.Eq{
			"booking_id": mod.BookingID,
			"status":     domain.ModificationPending,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertModification - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: UpsertModification - delete previous request: %v", ErrExecQuery, err)
	}

	insertQuery, insertArgs, err := psqlbuilder.Insert("modification_requests").
		Columns(
			"booking_id",
			"requested_check_in",
			"requested_check_out",
			"requested_guests",
			"reason",
			"status",
		).
		Values(
			mod.BookingID,
			mod.RequestedCheckIn,
			mod.RequestedCheckOut,
			mod.RequestedGuests,
			mod.Reason,
			mod.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertModification - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&mod.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertModification - execute insert: %v", ErrExecQuery, err)
	}

	mod.CreatedAt = createdAt.Time

	return mod, nil
}

// GetModificationByID получает запрос на изменение по ID в рамках бронирования
func (r *Repository) GetModificationByID(ctx context.Context, bookingID, modificationID int64) (*domain.ModificationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(modificationColumns...).
		From("modification_requests").
		Where(squirrel.Eq{
			"id":         modificationID,
			"booking_id": bookingID,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetModificationByID - build select query: %v", ErrBuildQuery, err)
	}

	mod, err := scanModificationRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrModificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetModificationByID - scan modification: %v", ErrScanRow, err)
	}

	return mod, nil
}

// GetActiveModification получает текущий pending-запрос бронирования
func (r *Repository) GetActiveModification(ctx context.Context, bookingID int64) (*domain.ModificationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(modificationColumns...).
		From("modification_requests").
		Where(squirrel.Eq{
			"booking_id": bookingID,
			"status":     domain.ModificationPending,
		}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveModification - build select query: %v", ErrBuildQuery, err)
	}

	mod, err := scanModificationRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrModificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveModification - scan modification: %v", ErrScanRow, err)
	}

	return mod, nil
}

// ResolveModification завершает запрос на изменение (approved/denied)
// Срабатывает только для pending-запроса
func (r *Repository) ResolveModification(ctx context.Context, modificationID int64, status domain.ModificationStatus, denialReason *string, resolvedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("modification_requests").
		Set("status", status).
		Set("denial_reason", denialReason).
		Set("resolved_at", resolvedAt).
		Where(squirrel.Eq{
			"id":     modificationID,
			"status": domain.ModificationPending,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ResolveModification - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ResolveModification - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ResolveModification - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrModificationNotFound
	}

	return nil
}

func scanModificationRow(row *sql.Row) (*domain.ModificationRequest, error) {
	var mod domain.ModificationRequest
	var createdAt sql.NullTime

	err := row.Scan(
		&mod.ID,
		&mod.BookingID,
		&mod.RequestedCheckIn,
		&mod.RequestedCheckOut,
		&mod.RequestedGuests,
		&mod.Reason,
		&mod.Status,
		&mod.DenialReason,
		&createdAt,
		&mod.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}

	mod.CreatedAt = createdAt.Time

	return &mod, nil
}
