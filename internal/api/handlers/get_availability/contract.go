package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/VRM-BookingService/internal/domain"
)

type AvailabilityService interface {
	GetMonth(ctx context.Context, propertyID int64, year int, month time.Month) (map[string]domain.DateStatus, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
