package db_models

type Account struct {
	BaseModel
	DisplayName  string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"default:user"`
	IsActive     bool   `gorm:"default:true"`
	LastLoginAt  int64
}
