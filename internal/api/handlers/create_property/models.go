package create_property

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

// CreatePropertyRequest HTTP request model
type CreatePropertyRequest struct {
	Title         string             `json:"title"`
	Location      string             `json:"location"`
	Description   string             `json:"description,omitempty"`
	PropertyType  string             `json:"propertyType,omitempty"`
	PricePerNight float64            `json:"pricePerNight"`
	MaxGuests     int                `json:"maxGuests"`
	Bedrooms      int                `json:"bedrooms,omitempty"`
	Bathrooms     float64            `json:"bathrooms,omitempty"`
	InstantBook   bool               `json:"instantBook,omitempty"`
	Amenities     []string           `json:"amenities,omitempty"`
	Images        []string           `json:"images,omitempty"`
	HouseRules    *HouseRulesRequest `json:"houseRules,omitempty"`
}

// ToServiceInput конвертирует HTTP запрос в модель сервиса
func (r *CreatePropertyRequest) ToServiceInput(hostID int64) models.CreatePropertyInput {
	in := models.CreatePropertyInput{
		HostID:        hostID,
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
		in.HouseRules = houseRulesInput(r.HouseRules)
	}
	return in
}

func houseRulesInput(hr *HouseRulesRequest) models.HouseRulesInput {
	in := models.HouseRulesInput{
		SmokingAllowed: hr.SmokingAllowed,
		PetsAllowed:    hr.PetsAllowed,
		PartiesAllowed: hr.PartiesAllowed,
		QuietHours:     hr.QuietHours,
	}
	if hr.CheckInTime != nil {
		in.CheckInTime = ptr.Ptr(types.TimeString(*hr.CheckInTime))
	}
	if hr.CheckOutTime != nil {
		in.CheckOutTime = ptr.Ptr(types.TimeString(*hr.CheckOutTime))
	}
	return in
}
