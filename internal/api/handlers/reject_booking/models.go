package reject_booking

// RejectBookingRequest HTTP request model
type RejectBookingRequest struct {
	Remarks string `json:"remarks"`
}
