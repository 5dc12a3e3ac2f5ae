package models

import "github.com/m04kA/VRM-BookingService/pkg/types"

// HouseRulesInput правила проживания в запросе
type HouseRulesInput struct {
	CheckInTime    *types.TimeString
	CheckOutTime   *types.TimeString
	SmokingAllowed *bool
	PetsAllowed    *bool
	PartiesAllowed *bool
	QuietHours     *string
}

// CreatePropertyInput данные для создания объявления
type CreatePropertyInput struct {
	HostID        int64
	Title         string
	Location      string
	Description   string
	PropertyType  string
	PricePerNight float64
	MaxGuests     int
	Bedrooms      int
	Bathrooms     float64
	InstantBook   bool
	Amenities     []string
	Images        []string
	HouseRules    HouseRulesInput
}

// UpdatePropertyInput данные для частичного обновления объявления
// Заполненные поля перезаписывают текущие значения, nil - остаются без изменений
type UpdatePropertyInput struct {
	Title         *string
	Location      *string
	Description   *string
	PropertyType  *string
	PricePerNight *float64
	MaxGuests     *int
	Bedrooms      *int
	Bathrooms     *float64
	InstantBook   *bool
	Amenities     []string
	Images        []string
	HouseRules    *HouseRulesInput
}
