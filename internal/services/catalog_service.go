package services

import (
	"context"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/response_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

// CatalogServiceInterface is the public read/admin surface of the three
// content catalogs. The quiz recommender bypasses this layer and reads the
// repositories directly.
type CatalogServiceInterface interface {
	ListServices(ctx context.Context) ([]response_models.ServiceResponse, error)
	GetService(ctx context.Context, id string) (*response_models.ServiceResponse, error)
	CreateService(ctx context.Context, req request_models.CreateServiceRequest) (string, error)

	ListProducts(ctx context.Context) ([]response_models.ProductResponse, error)
	GetProduct(ctx context.Context, id string) (*response_models.ProductResponse, error)
	CreateProduct(ctx context.Context, req request_models.CreateProductRequest) (string, error)

	ListPodcasts(ctx context.Context) ([]response_models.PodcastResponse, error)
	GetPodcast(ctx context.Context, id string) (*response_models.PodcastResponse, error)
	CreatePodcast(ctx context.Context, req request_models.CreatePodcastRequest) (string, error)
}

type CatalogService struct {
	serviceRepo repositories.ServiceRepository
	productRepo repositories.ProductRepository
	podcastRepo repositories.PodcastRepository
}

func NewCatalogService(
	serviceRepo repositories.ServiceRepository,
	productRepo repositories.ProductRepository,
	podcastRepo repositories.PodcastRepository,
) CatalogServiceInterface {
	return &CatalogService{
		serviceRepo: serviceRepo,
		productRepo: productRepo,
		podcastRepo: podcastRepo,
	}
}

func serviceResponse(service db_models.Service) response_models.ServiceResponse {
	return response_models.ServiceResponse{
		ID:                  service.ID.String(),
		Name:                service.Name,
		Description:         service.Description,
		Image:               service.Image,
		Price:               service.Price,
		ServiceType:         service.ServiceType,
		ServiceProviderName: service.ServiceProviderName,
	}
}

func (c *CatalogService) ListServices(ctx context.Context) ([]response_models.ServiceResponse, error) {
	services, err := c.serviceRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ServiceResponse, 0, len(services))
	for _, service := range services {
		out = append(out, serviceResponse(service))
	}
	return out, nil
}

func (c *CatalogService) GetService(ctx context.Context, id string) (*response_models.ServiceResponse, error) {
	service, err := c.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if service == nil {
		return nil, utils.ErrServiceNotFound
	}
	resp := serviceResponse(*service)
	return &resp, nil
}

func (c *CatalogService) CreateService(ctx context.Context, req request_models.CreateServiceRequest) (string, error) {
	service := &db_models.Service{
		Name:                 req.Name,
		Description:          req.Description,
		Image:                req.Image,
		Price:                req.Price,
		ServiceType:          req.ServiceType,
		ServiceProviderName:  req.ServiceProviderName,
		ServiceProviderEmail: req.ServiceProviderEmail,
	}
	if err := c.serviceRepo.Insert(ctx, service); err != nil {
		return "", utils.ErrDatabaseError
	}
	return service.ID.String(), nil
}

func productResponse(product db_models.Product) response_models.ProductResponse {
	return response_models.ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		Stock:       product.Stock,
	}
}

func (c *CatalogService) ListProducts(ctx context.Context) ([]response_models.ProductResponse, error) {
	products, err := c.productRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, productResponse(product))
	}
	return out, nil
}

func (c *CatalogService) GetProduct(ctx context.Context, id string) (*response_models.ProductResponse, error) {
	product, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}
	resp := productResponse(*product)
	return &resp, nil
}

func (c *CatalogService) CreateProduct(ctx context.Context, req request_models.CreateProductRequest) (string, error) {
	product := &db_models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
	}
	if err := c.productRepo.Insert(ctx, product); err != nil {
		return "", utils.ErrDatabaseError
	}
	return product.ID.String(), nil
}

func podcastResponse(podcast db_models.Podcast) response_models.PodcastResponse {
	return response_models.PodcastResponse{
		ID:              podcast.ID.String(),
		Title:           podcast.Title,
		Description:     podcast.Description,
		PodcastImageURL: podcast.PodcastImageURL,
		PodcastURL:      podcast.PodcastURL,
		PodcastType:     podcast.PodcastType,
	}
}

func (c *CatalogService) ListPodcasts(ctx context.Context) ([]response_models.PodcastResponse, error) {
	podcasts, err := c.podcastRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PodcastResponse, 0, len(podcasts))
	for _, podcast := range podcasts {
		out = append(out, podcastResponse(podcast))
	}
	return out, nil
}

func (c *CatalogService) GetPodcast(ctx context.Context, id string) (*response_models.PodcastResponse, error) {
	podcast, err := c.podcastRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if podcast == nil {
		return nil, utils.ErrPodcastNotFound
	}
	resp := podcastResponse(*podcast)
	return &resp, nil
}

func (c *CatalogService) CreatePodcast(ctx context.Context, req request_models.CreatePodcastRequest) (string, error) {
	podcast := &db_models.Podcast{
		Title:           req.Title,
		Description:     req.Description,
		PodcastImageURL: req.PodcastImageURL,
		PodcastURL:      req.PodcastURL,
		PodcastType:     req.PodcastType,
	}
	if err := c.podcastRepo.Insert(ctx, podcast); err != nil {
		return "", utils.ErrDatabaseError
	}
	return podcast.ID.String(), nil
}
