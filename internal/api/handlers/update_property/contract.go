package update_property

import (
	"context"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/internal/service/properties/models"
)

type PropertiesService interface {
	Update(ctx context.Context, id, hostID int64, in models.UpdatePropertyInput) (*domain.Property, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
