package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func bookingWithCheckIn(checkIn time.Time, status BookingStatus) *Booking {
	return &Booking{
		ID:         1,
		PropertyID: 10,
		GuestID:    100,
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 3),
		Guests:     2,
		TotalPrice: 300,
		Status:     status,
	}
}

func TestPolicy_AssessCancellation_RefundTiers(t *testing.T) {
	policy := DefaultPolicy()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		hoursBefore float64
		wantPercent int
		wantReason  string
	}{
		{"full refund with 50h notice", 50, 100, ReasonFullRefund},
		{"full refund exactly at 48h", 48, 100, ReasonFullRefund},
		{"partial refund with 30h notice", 30, 50, ReasonPartialRefund},
		{"partial refund exactly at 24h", 24, 50, ReasonPartialRefund},
		{"no refund with 10h notice", 10, 0, ReasonNoRefund},
		{"no refund just under 24h", 23.9, 0, ReasonNoRefund},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkIn := now.Add(time.Duration(tt.hoursBefore * float64(time.Hour)))
			booking := bookingWithCheckIn(checkIn, StatusConfirmed)

			assessment := policy.AssessCancellation(now, booking)

			assert.True(t, assessment.CanCancel)
			assert.Equal(t, tt.wantPercent, assessment.RefundPercent)
			assert.Equal(t, tt.wantReason, assessment.Reason)
			assert.InDelta(t, tt.hoursBefore, assessment.HoursUntilCheckIn, 0.01)
		})
	}
}

func TestPolicy_AssessCancellation_TerminalStatuses(t *testing.T) {
	policy := DefaultPolicy()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, status := range TerminalStatuses {
		t.Run(string(status), func(t *testing.T) {
			booking := bookingWithCheckIn(now.Add(100*time.Hour), status)

			assessment := policy.AssessCancellation(now, booking)

			assert.False(t, assessment.CanCancel)
		})
	}
}

func TestPolicy_AssessCancellation_PastCheckIn(t *testing.T) {
	policy := DefaultPolicy()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	booking := bookingWithCheckIn(now.Add(-10*time.Hour), StatusConfirmed)

	assessment := policy.AssessCancellation(now, booking)

	// Часы до заезда не могут быть отрицательными, возврата нет
	assert.Equal(t, float64(0), assessment.HoursUntilCheckIn)
	assert.Equal(t, 0, assessment.RefundPercent)
	assert.Equal(t, ReasonNoRefund, assessment.Reason)
}

func TestPolicy_AssessModification(t *testing.T) {
	policy := DefaultPolicy()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		hoursBefore float64
		status      BookingStatus
		wantAllowed bool
	}{
		{"allowed with 80h notice", 80, StatusConfirmed, true},
		{"allowed exactly at 72h", 72, StatusPending, true},
		{"rejected with 70h notice", 70, StatusConfirmed, false},
		{"rejected for cancelled booking", 100, StatusCancelled, false},
		{"rejected for completed booking", 100, StatusCompleted, false},
		{"allowed while modification pending", 80, StatusModificationRequested, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkIn := now.Add(time.Duration(tt.hoursBefore * float64(time.Hour)))
			booking := bookingWithCheckIn(checkIn, tt.status)

			assessment := policy.AssessModification(now, booking)

			assert.Equal(t, tt.wantAllowed, assessment.CanModify)
			assert.NotEmpty(t, assessment.Reason)
		})
	}
}
