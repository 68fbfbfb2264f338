package contact_fx

import (
	"go.uber.org/fx"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/infra"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/services"
)

var Module = fx.Provide(
	provideContactService, provideContactRepo)

func provideContactRepo(dbs *infra.Databases) repositories.ContactRepository {
	return repositories.NewContactRepository(dbs.User)
}

func provideContactService(contactRepo repositories.ContactRepository) services.ContactServiceInterface {
	return services.NewContactService(contactRepo)
}
