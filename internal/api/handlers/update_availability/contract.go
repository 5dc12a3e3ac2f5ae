package update_availability

import (
	"context"
	"time"

	"github.com/m04kA/VRM-BookingService/internal/domain"
)

type AvailabilityService interface {
	UpdateDate(ctx context.Context, propertyID int64, day time.Time, status domain.DateStatus) error
}

type PropertiesService interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
