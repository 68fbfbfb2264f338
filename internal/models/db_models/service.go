package db_models

// Service is a bookable wellness offering in the catalog database. The quiz
// recommender filters on ServiceType, which carries values like "reiki",
// "crystal_healing", "aura_cleansing", "meditation", "life_coaching",
// "astrology", "tarot" and "numerology".
type Service struct {
	BaseModel
	Name                 string
	Description          string
	Image                string
	Price                float64
	ServiceType          string `gorm:"index"`
	ServiceProviderName  string
	ServiceProviderEmail string
}
