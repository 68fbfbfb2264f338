package catalog_fx

import (
	"go.uber.org/fx"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/infra"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/services"
)

var Module = fx.Provide(
	provideCatalogService, provideServiceRepo, provideProductRepo, providePodcastRepo)

func provideServiceRepo(dbs *infra.Databases) repositories.ServiceRepository {
	return repositories.NewServiceRepository(dbs.Catalog)
}

func provideProductRepo(dbs *infra.Databases) repositories.ProductRepository {
	return repositories.NewProductRepository(dbs.Catalog)
}

func providePodcastRepo(dbs *infra.Databases) repositories.PodcastRepository {
	return repositories.NewPodcastRepository(dbs.Catalog)
}

func provideCatalogService(
	serviceRepo repositories.ServiceRepository,
	productRepo repositories.ProductRepository,
	podcastRepo repositories.PodcastRepository,
) services.CatalogServiceInterface {
	return services.NewCatalogService(serviceRepo, productRepo, podcastRepo)
}
