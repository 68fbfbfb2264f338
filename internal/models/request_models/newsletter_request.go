package request_models

type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}
