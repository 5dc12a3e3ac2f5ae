package domain

// Default policy values
const (
	DefaultFullRefundNoticeHours    = 48
	DefaultPartialRefundNoticeHours = 24
	DefaultPartialRefundPercent     = 50
	DefaultModificationNoticeHours  = 72

	// DefaultCalendarHorizonDays is how far ahead a freshly initialized
	// availability calendar is seeded with "available" days.
	DefaultCalendarHorizonDays = 365
)

// Business validation constants
const (
	MaxGuestsUpperBound         = 50
	MaxCancellationReasonLength = 500
	MaxModificationReasonLength = 500
)

// Cancellation reason labels stored with the booking, one per refund tier
const (
	ReasonFullRefund    = "Cancellation with full refund"
	ReasonPartialRefund = "Cancellation with partial refund"
	ReasonNoRefund      = "Late cancellation (no refund)"

	// ReasonDeclinedByHost is stored when a host declines a pending
	// booking; a decline is modeled as a cancellation, not a distinct
	// status.
	ReasonDeclinedByHost = "Declined by host"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// ActiveStatuses список статусов, при которых бронирование занимает даты
// Используется при фильтрации бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusModificationRequested,
}

// TerminalStatuses список финальных статусов бронирования
var TerminalStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}
