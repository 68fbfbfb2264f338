package db_models

type Product struct {
	BaseModel
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Stock       int
}
