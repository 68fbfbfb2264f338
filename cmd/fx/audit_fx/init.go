package audit_fx

import (
	"go.uber.org/fx"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/infra"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/services"
)

var Module = fx.Provide(
	provideAuditService, provideAuditRepo)

func provideAuditRepo(dbs *infra.Databases) repositories.AuditRepository {
	return repositories.NewAuditRepository(dbs.User)
}

func provideAuditService(auditRepo repositories.AuditRepository) services.AuditServiceInterface {
	return services.NewAuditService(auditRepo)
}
