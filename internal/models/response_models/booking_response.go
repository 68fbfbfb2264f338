package response_models

type BookingResponse struct {
	ID                  string  `json:"id"`
	ServiceID           string  `json:"serviceId"`
	ServiceName         string  `json:"serviceName"`
	ServicePrice        float64 `json:"servicePrice"`
	ServiceProviderName string  `json:"serviceProviderName"`
	BookingDate         string  `json:"bookingDate"` // "2006-01-02"
	BookingTime         string  `json:"bookingTime"`
	SessionDuration     int     `json:"sessionDuration"`
	SessionType         string  `json:"sessionType"`
	Status              string  `json:"status"`
	SpecialRequests     string  `json:"specialRequests,omitempty"`
}

type AvailabilityResponse struct {
	ServiceID      string   `json:"serviceId"`
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
}
