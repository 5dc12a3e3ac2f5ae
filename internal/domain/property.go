package domain

import (
	"strings"
	"time"

	"github.com/m04kA/VRM-BookingService/pkg/types"
)

// Property represents a rental listing
type Property struct {
	ID           int64
	HostID       int64
	Title        string
	Location     string
	Description  string
	PropertyType string

	PricePerNight float64 // positive
	MaxGuests     int     // positive
	Bedrooms      int
	Bathrooms     float64

	// InstantBook skips the host-approval step: bookings are created
	// directly in the confirmed state.
	InstantBook bool

	Amenities []string
	Images    []string

	HouseRules HouseRules

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HouseRules house-specific stay rules shown to guests
type HouseRules struct {
	CheckInTime    types.TimeString
	CheckOutTime   types.TimeString
	SmokingAllowed bool
	PetsAllowed    bool
	PartiesAllowed bool
	QuietHours     string
}

// HasAmenity reports whether the property offers the given amenity.
// Matching is a case-insensitive substring test in both directions: the
// stored amenity may contain the search term or the term may contain the
// amenity ("wifi" matches "Fast WiFi" and vice versa).
func (p *Property) HasAmenity(term string) bool {
	needle := strings.ToLower(term)
	for _, amenity := range p.Amenities {
		have := strings.ToLower(amenity)
		if strings.Contains(have, needle) || strings.Contains(needle, have) {
			return true
		}
	}
	return false
}

// PropertyFilter фильтр поиска объявлений
// Все заданные критерии объединяются по И
type PropertyFilter struct {
	Location     *string  // Подстрока локации (регистронезависимо)
	MinGuests    *int     // Минимальная вместимость
	PriceMin     *float64 // Нижняя граница цены за ночь
	PriceMax     *float64 // Верхняя граница цены за ночь
	PropertyType *string  // Точное совпадение типа
	BedroomsMin  *int     // Минимум спален
	Amenities    []string // Каждая запись должна найтись через HasAmenity
}

// Matches reports whether the property satisfies every provided criterion
func (f *PropertyFilter) Matches(p *Property) bool {
	if f.Location != nil && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(*f.Location)) {
		return false
	}
	if f.MinGuests != nil && p.MaxGuests < *f.MinGuests {
		return false
	}
	if f.PriceMin != nil && p.PricePerNight < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && p.PricePerNight > *f.PriceMax {
		return false
	}
	if f.PropertyType != nil && p.PropertyType != *f.PropertyType {
		return false
	}
	if f.BedroomsMin != nil && p.Bedrooms < *f.BedroomsMin {
		return false
	}
	for _, amenity := range f.Amenities {
		if !p.HasAmenity(amenity) {
			return false
		}
	}
	return true
}
