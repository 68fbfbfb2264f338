package profile_fx

import (
	"go.uber.org/fx"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/infra"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/services"
)

var Module = fx.Provide(
	provideProfileService, provideProfileRepo)

func provideProfileRepo(dbs *infra.Databases) repositories.UserProfileRepository {
	return repositories.NewUserProfileRepository(dbs.User)
}

func provideProfileService(profileRepo repositories.UserProfileRepository) services.ProfileServiceInterface {
	return services.NewProfileService(profileRepo)
}
