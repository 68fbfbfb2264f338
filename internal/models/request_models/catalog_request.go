package request_models

type CreateServiceRequest struct {
	Name                 string  `json:"name" binding:"required"`
	Description          string  `json:"description"`
	Image                string  `json:"image"`
	Price                float64 `json:"price" binding:"required"`
	ServiceType          string  `json:"serviceType" binding:"required"`
	ServiceProviderName  string  `json:"serviceProviderName"`
	ServiceProviderEmail string  `json:"serviceProviderEmail"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	ImageURL    string  `json:"imageUrl"`
	Stock       int     `json:"stock"`
}

type CreatePodcastRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	PodcastImageURL string `json:"podcastImageUrl"`
	PodcastURL      string `json:"podcastUrl"`
	PodcastType     string `json:"podcastType" binding:"required"`
}
