package response_models

type ServiceResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	Image               string  `json:"image"`
	Price               float64 `json:"price"`
	ServiceType         string  `json:"serviceType"`
	ServiceProviderName string  `json:"serviceProviderName"`
}

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Stock       int     `json:"stock"`
}

type PodcastResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	PodcastImageURL string `json:"podcastImageUrl"`
	PodcastURL      string `json:"podcastUrl"`
	PodcastType     string `json:"podcastType"`
}
