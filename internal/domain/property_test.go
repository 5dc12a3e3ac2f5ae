package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/VRM-BookingService/pkg/ptr"
)

func sampleProperty() *Property {
	return &Property{
		ID:            1,
		HostID:        10,
		Title:         "Cozy loft",
		Location:      "Lisbon, Portugal",
		PropertyType:  "apartment",
		PricePerNight: 120,
		MaxGuests:     4,
		Bedrooms:      2,
		Amenities:     []string{"Fast WiFi", "Kitchen", "Air conditioning"},
	}
}

func TestProperty_HasAmenity(t *testing.T) {
	p := sampleProperty()

	// Подстрочное совпадение работает в обе стороны
	assert.True(t, p.HasAmenity("wifi"))
	assert.True(t, p.HasAmenity("Fast WiFi at home"))
	assert.True(t, p.HasAmenity("KITCHEN"))
	assert.False(t, p.HasAmenity("pool"))
}

func TestPropertyFilter_Matches(t *testing.T) {
	p := sampleProperty()

	tests := []struct {
		name   string
		filter PropertyFilter
		want   bool
	}{
		{"empty filter matches everything", PropertyFilter{}, true},
		{"location substring", PropertyFilter{Location: ptr.Ptr("lisbon")}, true},
		{"location mismatch", PropertyFilter{Location: ptr.Ptr("porto")}, false},
		{"guests within capacity", PropertyFilter{MinGuests: ptr.Ptr(4)}, true},
		{"guests above capacity", PropertyFilter{MinGuests: ptr.Ptr(5)}, false},
		{"price range", PropertyFilter{PriceMin: ptr.Ptr(100.0), PriceMax: ptr.Ptr(150.0)}, true},
		{"price above max", PropertyFilter{PriceMax: ptr.Ptr(100.0)}, false},
		{"exact property type", PropertyFilter{PropertyType: ptr.Ptr("apartment")}, true},
		{"wrong property type", PropertyFilter{PropertyType: ptr.Ptr("villa")}, false},
		{"bedrooms minimum", PropertyFilter{BedroomsMin: ptr.Ptr(2)}, true},
		{"amenities all required", PropertyFilter{Amenities: []string{"wifi", "kitchen"}}, true},
		{"one amenity missing", PropertyFilter{Amenities: []string{"wifi", "pool"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(p))
		})
	}
}

func TestBooking_Nights(t *testing.T) {
	b := bookingWithCheckIn(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), StatusConfirmed)

	assert.Equal(t, 3, b.Nights())
}

func TestBooking_StatusPredicates(t *testing.T) {
	for _, status := range ActiveStatuses {
		b := &Booking{Status: status}
		assert.True(t, b.IsActive(), "status %s", status)
		assert.False(t, b.IsTerminal(), "status %s", status)
		assert.True(t, b.CanBeCancelled(), "status %s", status)
	}

	for _, status := range TerminalStatuses {
		b := &Booking{Status: status}
		assert.False(t, b.IsActive(), "status %s", status)
		assert.True(t, b.IsTerminal(), "status %s", status)
		assert.False(t, b.CanBeCancelled(), "status %s", status)
	}

	assert.True(t, (&Booking{Status: StatusPending}).CanBeApproved())
	assert.False(t, (&Booking{Status: StatusConfirmed}).CanBeApproved())
}
