package delete_property

import "context"

type PropertiesService interface {
	Delete(ctx context.Context, id, hostID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
