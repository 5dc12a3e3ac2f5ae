package get_property

import (
	"context"

	"github.com/m04kA/VRM-BookingService/internal/domain"
)

type PropertiesService interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
