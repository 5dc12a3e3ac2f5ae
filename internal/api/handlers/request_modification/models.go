package request_modification

import (
	"time"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	requestModification "github.com/m04kA/VRM-BookingService/internal/usecase/request_modification"
)

// ModificationRequestBody HTTP request model
type ModificationRequestBody struct {
	CheckIn  string `json:"checkIn"`  // "2025-10-15"
	CheckOut string `json:"checkOut"` // "2025-10-18"
	Guests   int    `json:"guests"`
	Reason   string `json:"reason,omitempty"`
}

// ModificationResponse HTTP response model
type ModificationResponse struct {
	ModificationID int64  `json:"modificationId"`
	BookingID      int64  `json:"bookingId"`
	CheckIn        string `json:"checkIn"`
	CheckOut       string `json:"checkOut"`
	Guests         int    `json:"guests"`
	Reason         string `json:"reason,omitempty"`
	Status         string `json:"status"`
	BookingStatus  string `json:"bookingStatus"`
	CreatedAt      string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ModificationRequestBody) ToUseCaseRequest(bookingID, guestID int64) (*requestModification.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &requestModification.Request{
		BookingID: bookingID,
		GuestID:   guestID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Guests:    r.Guests,
		Reason:    r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *requestModification.Response) *ModificationResponse {
	return &ModificationResponse{
		ModificationID: resp.ModificationID,
		BookingID:      resp.BookingID,
		CheckIn:        resp.CheckIn.Format(domain.DateFormat),
		CheckOut:       resp.CheckOut.Format(domain.DateFormat),
		Guests:         resp.Guests,
		Reason:         resp.Reason,
		Status:         resp.Status,
		BookingStatus:  resp.BookingStatus,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
