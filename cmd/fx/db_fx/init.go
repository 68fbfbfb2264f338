package db_fx

import (
	"go.uber.org/fx"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/infra"
)

var Module = fx.Provide(
	provideDatabases)

func provideDatabases(lc fx.Lifecycle) *infra.Databases {
	dbs := infra.InitDatabases()
	lc.Append(fx.StopHook(func() {
		infra.CloseDatabases(dbs)
	}))
	return dbs
}
