package request_models

type CreateBookingRequest struct {
	ServiceID       string `json:"serviceId" binding:"required"`
	BookingDate     string `json:"bookingDate" binding:"required"` // "2006-01-02"
	BookingTime     string `json:"bookingTime" binding:"required"` // "15:00"
	SessionDuration int    `json:"sessionDuration"`
	SessionType     string `json:"sessionType"`
	SessionPlatform string `json:"sessionPlatform"`
	SpecialRequests string `json:"specialRequests"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
}
