package account_fx

import (
	"go.uber.org/fx"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/infra"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/services"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(dbs *infra.Databases) repositories.AccountRepository {
	return repositories.NewAccountRepository(dbs.User)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	resetTokens memcache.ResetTokenStore,
	mailService services.IMailService,
	audit services.AuditServiceInterface,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, resetTokens, mailService, audit)
}
