package deny_modification

// DenyRequest HTTP request model, тело опционально
type DenyRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// DenyResponse HTTP response model
type DenyResponse struct {
	BookingID      int64  `json:"bookingId"`
	ModificationID int64  `json:"modificationId"`
	BookingStatus  string `json:"bookingStatus"`
	ResolvedAt     string `json:"resolvedAt"`
}
