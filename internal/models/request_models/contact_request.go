package request_models

type ContactRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Subject     string `json:"subject" binding:"required,max=200"`
	Message     string `json:"message" binding:"required,max=2000"`
	ContactType string `json:"contactType"`
	Priority    string `json:"priority"`
}
