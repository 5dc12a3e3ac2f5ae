package handlers

import (
	"time"

	"github.com/m04kA/VRM-BookingService/internal/domain"
)

// HouseRulesPayload правила проживания в HTTP моделях
type HouseRulesPayload struct {
	CheckInTime    string `json:"checkInTime,omitempty"`
	CheckOutTime   string `json:"checkOutTime,omitempty"`
	SmokingAllowed bool   `json:"smokingAllowed"`
	PetsAllowed    bool   `json:"petsAllowed"`
	PartiesAllowed bool   `json:"partiesAllowed"`
	QuietHours     string `json:"quietHours,omitempty"`
}

// PropertyResponse HTTP модель объявления
type PropertyResponse struct {
	ID            int64             `json:"id"`
	HostID        int64             `json:"hostId"`
	Title         string            `json:"title"`
	Location      string            `json:"location"`
	Description   string            `json:"description,omitempty"`
	PropertyType  string            `json:"propertyType,omitempty"`
	PricePerNight float64           `json:"pricePerNight"`
	MaxGuests     int               `json:"maxGuests"`
	Bedrooms      int               `json:"bedrooms"`
	Bathrooms     float64           `json:"bathrooms"`
	InstantBook   bool              `json:"instantBook"`
	Amenities     []string          `json:"amenities,omitempty"`
	Images        []string          `json:"images,omitempty"`
	HouseRules    HouseRulesPayload `json:"houseRules"`
	CreatedAt     string            `json:"createdAt"`
	UpdatedAt     string            `json:"updatedAt"`
}

// PropertyFromDomain конвертирует доменную модель объявления в HTTP модель
func PropertyFromDomain(p *domain.Property) *PropertyResponse {
	return &PropertyResponse{
		ID:            p.ID,
		HostID:        p.HostID,
		Title:         p.Title,
		Location:      p.Location,
		Description:   p.Description,
		PropertyType:  p.PropertyType,
		PricePerNight: p.PricePerNight,
		MaxGuests:     p.MaxGuests,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		InstantBook:   p.InstantBook,
		Amenities:     p.Amenities,
		Images:        p.Images,
		HouseRules: HouseRulesPayload{
			CheckInTime:    p.HouseRules.CheckInTime.String(),
			CheckOutTime:   p.HouseRules.CheckOutTime.String(),
			SmokingAllowed: p.HouseRules.SmokingAllowed,
			PetsAllowed:    p.HouseRules.PetsAllowed,
			PartiesAllowed: p.HouseRules.PartiesAllowed,
			QuietHours:     p.HouseRules.QuietHours,
		},
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

// PropertiesFromDomain конвертирует список объявлений
func PropertiesFromDomain(list []*domain.Property) []*PropertyResponse {
	result := make([]*PropertyResponse, 0, len(list))
	for _, p := range list {
		result = append(result, PropertyFromDomain(p))
	}
	return result
}

// BookingResponse HTTP модель бронирования
type BookingResponse struct {
	ID                 int64   `json:"id"`
	PropertyID         int64   `json:"propertyId"`
	GuestID            int64   `json:"guestId"`
	GuestName          string  `json:"guestName"`
	CheckIn            string  `json:"checkIn"`
	CheckOut           string  `json:"checkOut"`
	Guests             int     `json:"guests"`
	Nights             int     `json:"nights"`
	TotalPrice         float64 `json:"totalPrice"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// BookingFromDomain конвертирует доменную модель бронирования в HTTP модель
func BookingFromDomain(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                 b.ID,
		PropertyID:         b.PropertyID,
		GuestID:            b.GuestID,
		GuestName:          b.GuestName,
		CheckIn:            b.CheckIn.Format(domain.DateFormat),
		CheckOut:           b.CheckOut.Format(domain.DateFormat),
		Guests:             b.Guests,
		Nights:             b.Nights(),
		TotalPrice:         b.TotalPrice,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}
	return resp
}

// BookingsFromDomain конвертирует список бронирований
func BookingsFromDomain(list []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(list))
	for _, b := range list {
		result = append(result, BookingFromDomain(b))
	}
	return result
}
