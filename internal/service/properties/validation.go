package properties

import (
	"fmt"

	"github.com/m04kA/VRM-BookingService/internal/service/properties/models"
)

// validateCreate проверяет обязательные поля создаваемого объявления
func validateCreate(in models.CreatePropertyInput) error {
	if in.HostID <= 0 {
		return fmt.Errorf("%w: host_id must be positive", ErrInvalidInput)
	}
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if in.PricePerNight <= 0 {
		return fmt.Errorf("%w: price_per_night must be positive", ErrInvalidInput)
	}
	if in.MaxGuests <= 0 {
		return fmt.Errorf("%w: max_guests must be positive", ErrInvalidInput)
	}
	if in.Bedrooms < 0 {
		return fmt.Errorf("%w: bedrooms must not be negative", ErrInvalidInput)
	}
	if in.Bathrooms < 0 {
		return fmt.Errorf("%w: bathrooms must not be negative", ErrInvalidInput)
	}
	if in.HouseRules.CheckInTime != nil {
		if err := in.HouseRules.CheckInTime.Validate(); err != nil {
			return fmt.Errorf("%w: check_in_time: %v", ErrInvalidInput, err)
		}
	}
	if in.HouseRules.CheckOutTime != nil {
		if err := in.HouseRules.CheckOutTime.Validate(); err != nil {
			return fmt.Errorf("%w: check_out_time: %v", ErrInvalidInput, err)
		}
	}
	return nil
}

// validateUpdate проверяет заполненные поля частичного обновления
func validateUpdate(in models.UpdatePropertyInput) error {
	if in.Title != nil && *in.Title == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if in.Location != nil && *in.Location == "" {
		return fmt.Errorf("%w: location must not be empty", ErrInvalidInput)
	}
	if in.PricePerNight != nil && *in.PricePerNight <= 0 {
		return fmt.Errorf("%w: price_per_night must be positive", ErrInvalidInput)
	}
	if in.MaxGuests != nil && *in.MaxGuests <= 0 {
		return fmt.Errorf("%w: max_guests must be positive", ErrInvalidInput)
	}
	if in.Bedrooms != nil && *in.Bedrooms < 0 {
		return fmt.Errorf("%w: bedrooms must not be negative", ErrInvalidInput)
	}
	if in.Bathrooms != nil && *in.Bathrooms < 0 {
		return fmt.Errorf("%w: bathrooms must not be negative", ErrInvalidInput)
	}
	if in.HouseRules != nil {
		if in.HouseRules.CheckInTime != nil {
			if err := in.HouseRules.CheckInTime.Validate(); err != nil {
				return fmt.Errorf("%w: check_in_time: %v", ErrInvalidInput, err)
			}
		}
		if in.HouseRules.CheckOutTime != nil {
			if err := in.HouseRules.CheckOutTime.Validate(); err != nil {
				return fmt.Errorf("%w: check_out_time: %v", ErrInvalidInput, err)
			}
		}
	}
	return nil
}
