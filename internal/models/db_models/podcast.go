package db_models

type Podcast struct {
	BaseModel
	Title           string
	Description     string
	PodcastImageURL string
	PodcastURL      string
	PodcastType     string `gorm:"index"`
}
