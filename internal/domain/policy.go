package domain

import (
	"fmt"
	"time"
)

// Policy holds the time-windowed business rules for cancellation refunds
// and modification eligibility. The thresholds are deployment constants
// loaded from configuration, not per-property settings.
type Policy struct {
	FullRefundNoticeHours    int // >= this many hours before check-in: 100% refund
	PartialRefundNoticeHours int // >= this many hours: partial refund
	PartialRefundPercent     int
	ModificationNoticeHours  int // minimum notice for a modification request
}

// DefaultPolicy returns the policy with standard marketplace thresholds
func DefaultPolicy() Policy {
	return Policy{
		FullRefundNoticeHours:    DefaultFullRefundNoticeHours,
		PartialRefundNoticeHours: DefaultPartialRefundNoticeHours,
		PartialRefundPercent:     DefaultPartialRefundPercent,
		ModificationNoticeHours:  DefaultModificationNoticeHours,
	}
}

// CancellationAssessment is the result of evaluating a cancellation.
// CanCancel is true for every non-terminal booking; the refund percentage
// alone distinguishes the tiers.
type CancellationAssessment struct {
	CanCancel         bool
	RefundPercent     int
	Reason            string
	HoursUntilCheckIn float64
}

// ModificationAssessment is the result of evaluating modification eligibility
type ModificationAssessment struct {
	CanModify         bool
	Reason            string
	HoursUntilCheckIn float64
}

// AssessCancellation computes the refund tier for cancelling at time now.
// The refund is a non-decreasing step function of hours-until-check-in with
// breakpoints exactly at the partial and full notice thresholds.
func (p Policy) AssessCancellation(now time.Time, booking *Booking) CancellationAssessment {
	hours := booking.CheckIn.Sub(now).Hours()

	assessment := CancellationAssessment{
		CanCancel:         booking.CanBeCancelled(),
		HoursUntilCheckIn: maxFloat(0, hours),
	}

	switch {
	case hours >= float64(p.FullRefundNoticeHours):
		assessment.RefundPercent = 100
		assessment.Reason = ReasonFullRefund
	case hours >= float64(p.PartialRefundNoticeHours):
		assessment.RefundPercent = p.PartialRefundPercent
		assessment.Reason = ReasonPartialRefund
	default:
		assessment.RefundPercent = 0
		assessment.Reason = ReasonNoRefund
	}

	return assessment
}

// AssessModification computes modification eligibility at time now.
// A booking can be modified only with enough notice and only while it is
// not in a terminal state.
func (p Policy) AssessModification(now time.Time, booking *Booking) ModificationAssessment {
	hours := booking.CheckIn.Sub(now).Hours()

	assessment := ModificationAssessment{
		HoursUntilCheckIn: maxFloat(0, hours),
	}

	switch {
	case booking.Status == StatusCancelled:
		assessment.Reason = "Modifications not allowed (booking is cancelled)"
	case booking.Status == StatusCompleted:
		assessment.Reason = "Modifications not allowed (booking is completed)"
	case hours < float64(p.ModificationNoticeHours):
		assessment.Reason = fmt.Sprintf("Modifications not allowed (less than %d hours notice)", p.ModificationNoticeHours)
	default:
		assessment.CanModify = true
		assessment.Reason = fmt.Sprintf("Modifications allowed (%d+ hours notice required)", p.ModificationNoticeHours)
	}

	return assessment
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
