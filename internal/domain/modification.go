package domain

import "time"

// ModificationStatus represents the status of a modification request
type ModificationStatus string

const (
	ModificationPending  ModificationStatus = "pending"
	ModificationApproved ModificationStatus = "approved"
	ModificationDenied   ModificationStatus = "denied"
)

// ModificationRequest is a guest-submitted proposal to change the dates or
// guest count of an existing booking, subject to host approval.
// A booking holds at most one active request: submitting a new one replaces
// the previous pending request.
type ModificationRequest struct {
	ID        int64
	BookingID int64

	RequestedCheckIn  time.Time
	RequestedCheckOut time.Time
	RequestedGuests   int
	Reason            string

	Status       ModificationStatus
	DenialReason *string

	CreatedAt  time.Time
	ResolvedAt *time.Time
}

// IsPending returns true while the request awaits a host decision
func (m *ModificationRequest) IsPending() bool {
	return m.Status == ModificationPending
}
