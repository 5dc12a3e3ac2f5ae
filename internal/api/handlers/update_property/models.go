package update_property

import (
	"github.com/m04kA/VRM-BookingService/internal/service/properties/models"
	"github.com/m04kA/VRM-BookingService/pkg/ptr"
	"github.com/m04kA/VRM-BookingService/pkg/types"
)

// HouseRulesRequest правила проживания в HTTP запросе
type HouseRulesRequest struct {
	CheckInTime    *string `json:"checkInTime,omitempty"`
	CheckOutTime   *string `json:"checkOutTime,omitempty"`
	SmokingAllowed *bool   `json:"smokingAllowed,omitempty"`
	PetsAllowed    *bool   `json:"petsAllowed,omitempty"`
	PartiesAllowed *bool   `json:"partiesAllowed,omitempty"`
	QuietHours     *string `json:"quietHours,omitempty"`
}

// UpdatePropertyRequest HTTP request model
// Заполненные поля перезаписывают текущие значения
type UpdatePropertyRequest struct {
	Title         *string            `json:"title,omitempty"`
	Location      *string            `json:"location,omitempty"`
	Description   *string            `json:"description,omitempty"`
	PropertyType  *string            `json:"propertyType,omitempty"`
	PricePerNight *float64           `json:"pricePerNight,omitempty"`
	MaxGuests     *int               `json:"maxGuests,omitempty"`
	Bedrooms      *int               `json:"bedrooms,omitempty"`
	Bathrooms     *float64           `json:"bathrooms,omitempty"`
	InstantBook   *bool              `json:"instantBook,omitempty"`
	Amenities     []string           `json:"amenities,omitempty"`
	Images        []string           `json:"images,omitempty"`
	HouseRules    *HouseRulesRequest `json:"houseRules,omitempty"`
}

// ToServiceInput конвертирует HTTP запрос в модель сервиса
func (r *UpdatePropertyRequest) ToServiceInput() models.UpdatePropertyInput {
	in := models.UpdatePropertyInput{
		Title:         r.Title,
		Location:      r.Location,
		Description:   r.Description,
		PropertyType:  r.PropertyType,
		PricePerNight: r.PricePerNight,
		MaxGuests:     r.MaxGuests,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		InstantBook:   r.InstantBook,
		Amenities:     r.Amenities,
		Images:        r.Images,
	}
	if r.HouseRules != nil {
		rules := models.HouseRulesInput{
			SmokingAllowed: r.HouseRules.SmokingAllowed,
			PetsAllowed:    r.HouseRules.PetsAllowed,
			PartiesAllowed: r.HouseRules.PartiesAllowed,
			QuietHours:     r.HouseRules.QuietHours,
		}
		if r.HouseRules.CheckInTime != nil {
			rules.CheckInTime = ptr.Ptr(types.TimeString(*r.HouseRules.CheckInTime))
		}
		if r.HouseRules.CheckOutTime != nil {
			rules.CheckOutTime = ptr.Ptr(types.TimeString(*r.HouseRules.CheckOutTime))
		}
		in.HouseRules = &rules
	}
	return in
}
