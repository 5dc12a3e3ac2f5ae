package events

import (
	"time"
)

// EventType тип события жизненного цикла бронирования
type EventType string

const (
	BookingCreated               EventType = "booking.created"
	BookingCancelled             EventType = "booking.cancelled"
	BookingStatusChanged         EventType = "booking.status_changed"
	BookingModificationRequested EventType = "booking.modification_requested"
	BookingModificationApproved  EventType = "booking.modification_approved"
	BookingModificationDenied    EventType = "booking.modification_denied"
)

// BookingEvent событие, публикуемое в Kafka при изменении бронирования
// Потребители: сервис уведомлений и аналитика
type BookingEvent struct {
	EventID    string                 `json:"eventId"`
	Type       EventType              `json:"type"`
	BookingID  int64                  `json:"bookingId"`
	PropertyID int64                  `json:"propertyId"`
	OccurredAt time.Time              `json:"occurredAt"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
}
