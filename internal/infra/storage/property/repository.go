package property

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/VRM-BookingService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL "foreign_key_violation"
const pgForeignKeyViolation = "23503"

var propertyColumns = []string{
	"id",
	"host_id",
	"title",
	"location",
	"description",
	"property_type",
	"price_per_night",
	"max_guests",
	"bedrooms",
	"bathrooms",
	"instant_book",
	"amenities",
	"images",
	"check_in_time",
	"check_out_time",
	"smoking_allowed",
	"pets_allowed",
	"parties_allowed",
	"quiet_hours",
	"created_at",
	"updated_at",
}

// Repository репозиторий объявлений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объявлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое объявление
func (r *Repository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("properties").
		Columns(
			"host_id",
			"title",
			"location",
			"description",
			"property_type",
			"price_per_night",
			"max_guests",
			"bedrooms",
			"bathrooms",
			"instant_book",
			"amenities",
			"images",
			"check_in_time",
			"check_out_time",
			"smoking_allowed",
			"pets_allowed",
			"parties_allowed",
			"quiet_hours",
		).
		Values(
			p.HostID,
			p.Title,
			p.Location,
			p.Description,
			p.PropertyType,
			p.PricePerNight,
			p.MaxGuests,
			p.Bedrooms,
			p.Bathrooms,
			p.InstantBook,
			pq.Array(p.Amenities),
			pq.Array(p.Images),
			p.HouseRules.CheckInTime,
			p.HouseRules.CheckOutTime,
			p.HouseRules.SmokingAllowed,
			p.HouseRules.PetsAllowed,
			p.HouseRules.PartiesAllowed,
			p.HouseRules.QuietHours,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает объявление по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(propertyColumns...).
		From("properties").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPropertyRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan property: %v", ErrScanRow, err)
	}

	return p, nil
}

// GetByHostID получает все объявления хоста
func (r *Repository) GetByHostID(ctx context.Context, hostID int64) ([]*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(propertyColumns...).
		From("properties").
		Where(squirrel.Eq{"host_id": hostID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByHostID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHostID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanProperties(rows)
}

// List получает объявления по фильтру поиска
// Простые критерии (локация, вместимость, цена, тип, спальни) уходят в SQL;
// amenities дофильтровываются в коде - двустороннее нестрогое сравнение
// подстрок в SQL не выражается
func (r *Repository) List(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(propertyColumns...).
		From("properties").
		OrderBy("id ASC")

	if filter.Location != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"location": "%" + *filter.Location + "%"})
	}
	if filter.MinGuests != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"max_guests": *filter.MinGuests})
	}
	if filter.PriceMin != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"price_per_night": *filter.PriceMin})
	}
	if filter.PriceMax != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"price_per_night": *filter.PriceMax})
	}
	if filter.PropertyType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"property_type": *filter.PropertyType})
	}
	if filter.BedroomsMin != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"bedrooms": *filter.BedroomsMin})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	properties, err := scanProperties(rows)
	if err != nil {
		return nil, err
	}

	if len(filter.Amenities) == 0 {
		return properties, nil
	}

	filtered := make([]*domain.Property, 0, len(properties))
	for _, p := range properties {
		matched := true
		for _, amenity := range filter.Amenities {
			if !p.HasAmenity(amenity) {
				matched = false
				break
			}
		}
		if matched {
			filtered = append(filtered, p)
		}
	}

	return filtered, nil
}

// Update обновляет объявление целиком
func (r *Repository) Update(ctx context.Context, p *domain.Property) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("properties").
		Set("title", p.Title).
		Set("location", p.Location).
		Set("description", p.Description).
		Set("property_type", p.PropertyType).
		Set("price_per_night", p.PricePerNight).
		Set("max_guests", p.MaxGuests).
		Set("bedrooms", p.Bedrooms).
		Set("bathrooms", p.Bathrooms).
		Set("instant_book", p.InstantBook).
		Set("amenities", pq.Array(p.Amenities)).
		Set("images", pq.Array(p.Images)).
		Set("check_in_time", p.HouseRules.CheckInTime).
		Set("check_out_time", p.HouseRules.CheckOutTime).
		Set("smoking_allowed", p.HouseRules.SmokingAllowed).
		Set("pets_allowed", p.HouseRules.PetsAllowed).
		Set("parties_allowed", p.HouseRules.PartiesAllowed).
		Set("quiet_hours", p.HouseRules.QuietHours).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
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
		return ErrPropertyNotFound
	}

	return nil
}

// Delete удаляет объявление
// Объявление с бронированиями удалить нельзя: внешние ключи в БД
// запрещают осиротевшие бронирования
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("properties").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgForeignKeyViolation {
			return ErrPropertyHasBookings
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPropertyNotFound
	}

	return nil
}

// scanProperties сканирует результаты запроса в слайс объявлений
func scanProperties(rows *sql.Rows) ([]*domain.Property, error) {
	properties := make([]*domain.Property, 0)

	for rows.Next() {
		p, err := scanProperty(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanProperties - scan row: %v", ErrScanRow, err)
		}
		properties = append(properties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanProperties - rows error: %v", ErrScanRow, err)
	}

	return properties, nil
}

func scanPropertyRow(row *sql.Row) (*domain.Property, error) {
	return scanProperty(row.Scan)
}

func scanProperty(scan func(dest ...interface{}) error) (*domain.Property, error) {
	var p domain.Property
	var amenities, images pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&p.ID,
		&p.HostID,
		&p.Title,
		&p.Location,
		&p.Description,
		&p.PropertyType,
		&p.PricePerNight,
		&p.MaxGuests,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.InstantBook,
		&amenities,
		&images,
		&p.HouseRules.CheckInTime,
		&p.HouseRules.CheckOutTime,
		&p.HouseRules.SmokingAllowed,
		&p.HouseRules.PetsAllowed,
		&p.HouseRules.PartiesAllowed,
		&p.HouseRules.QuietHours,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Amenities = amenities
	p.Images = images
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}
