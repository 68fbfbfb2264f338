package db_models

type Contact struct {
	BaseModel
	Name        string
	Email       string
	Subject     string
	Message     string
	ContactType string `gorm:"default:general"` // general, support, feedback, partnership, other
	Priority    string `gorm:"default:medium"`  // low, medium, high, urgent
	Status      string `gorm:"default:new"`     // new, in_progress, responded, resolved, closed
}
