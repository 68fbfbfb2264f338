package db_models

type NewsletterSubscription struct {
	BaseModel
	Email          string `gorm:"unique"`
	IsSubscribed   bool   `gorm:"default:true"`
	UserID         string `gorm:"size:64"`
	SubscribedAt   int64
	UnsubscribedAt int64
}
