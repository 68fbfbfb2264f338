package newsletter_fx

import (
	"go.uber.org/fx"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/infra"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/services"
)

var Module = fx.Provide(
	provideNewsletterService, provideNewsletterRepo)

func provideNewsletterRepo(dbs *infra.Databases) repositories.NewsletterRepository {
	return repositories.NewNewsletterRepository(dbs.User)
}

func provideNewsletterService(newsletterRepo repositories.NewsletterRepository) services.NewsletterServiceInterface {
	return services.NewNewsletterService(newsletterRepo)
}
