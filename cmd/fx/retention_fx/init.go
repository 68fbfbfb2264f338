package retention_fx

import (
	"context"
	"log"
	"time"

	"go.uber.org/fx"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideRetentionService),
	fx.Invoke(startSweeper))

const sweepInterval = 24 * time.Hour

func provideRetentionService(
	sessionRepo repositories.QuizSessionRepository,
	auditRepo repositories.AuditRepository,
) services.RetentionServiceInterface {
	return services.NewRetentionService(sessionRepo, auditRepo)
}

// startSweeper runs one retention sweep at boot and then once a day until
// shutdown.
func startSweeper(lc fx.Lifecycle, retention services.RetentionServiceInterface) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					if _, _, err := retention.SweepExpired(ctx); err != nil {
						log.Printf("Retention sweep failed: %v", err)
					}
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}
