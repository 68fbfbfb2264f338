package db_models

// Recommendation links a user identity to the recommendation bundle produced
// by one quiz run. Catalog items are referenced by string ids only, so the
// record survives catalog reshuffles. Append-only: every quiz submission by
// an authenticated user adds a new row.
type Recommendation struct {
	BaseModel
	UserID          string               `gorm:"index;size:64"`
	Recommendations RecommendationBundle `gorm:"serializer:json"`
}
