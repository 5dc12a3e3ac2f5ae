package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"strips wall clock time",
			time.Date(2025, 10, 15, 18, 30, 45, 123, time.UTC),
			time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"converts zone before truncating",
			time.Date(2025, 10, 15, 2, 0, 0, 0, loc), // 2025-10-14 21:00 UTC
			time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			"midnight stays unchanged",
			time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateOnly(tt.in))
		})
	}
}

func TestDaysInRange_InclusiveBothEnds(t *testing.T) {
	start := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)

	days := DaysInRange(start, end)

	// День выезда входит в диапазон
	assert.Len(t, days, 4)
	assert.Equal(t, start, days[0])
	assert.Equal(t, end, days[3])
}

func TestDaysInRange_SingleDay(t *testing.T) {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	days := DaysInRange(day, day)

	assert.Len(t, days, 1)
}

func TestMonthBounds(t *testing.T) {
	first, next := MonthBounds(2025, time.December)

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), next)
}

func TestIsValidDateStatus(t *testing.T) {
	assert.True(t, IsValidDateStatus(DateAvailable))
	assert.True(t, IsValidDateStatus(DateBlocked))
	assert.True(t, IsValidDateStatus(DateBooked))
	assert.False(t, IsValidDateStatus("unavailable"))
	assert.False(t, IsValidDateStatus(""))
}
