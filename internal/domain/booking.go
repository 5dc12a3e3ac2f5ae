package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending               BookingStatus = "pending"
	StatusConfirmed             BookingStatus = "confirmed"
	StatusCancelled             BookingStatus = "cancelled"
	StatusCompleted             BookingStatus = "completed"
	StatusModificationRequested BookingStatus = "modification_requested"
)

// Booking represents a stay reservation for a property
type Booking struct {
	ID         int64
	PropertyID int64
	GuestID    int64
	GuestName  string
	CheckIn    time.Time // day granularity, UTC midnight
	CheckOut   time.Time // strictly after CheckIn
	Guests     int

	// TotalPrice is fixed at creation (nights * price per night) and is
	// not recomputed when the booking is later modified.
	TotalPrice float64

	Status BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Nights returns the number of nights between check-in and check-out.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// IsActive returns true if the booking still occupies calendar dates
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusCompleted
}

// IsTerminal returns true if the booking reached a final state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// CanBeCancelled returns true if the booking status allows cancellation.
// Cancellation itself is always permitted for non-terminal bookings; only
// the refund percentage depends on the notice period (see Policy).
func (b *Booking) CanBeCancelled() bool {
	return !b.IsTerminal()
}

// CanBeApproved returns true if a host can approve or decline the booking
func (b *Booking) CanBeApproved() bool {
	return b.Status == StatusPending
}

// GuestBookingsFilter фильтр для получения бронирований гостя
type GuestBookingsFilter struct {
	GuestID int64          // Обязательный параметр
	Status  *BookingStatus // Фильтр по статусу (опционально)
}
