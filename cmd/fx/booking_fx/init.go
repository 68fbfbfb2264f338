package booking_fx

import (
	"go.uber.org/fx"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/infra"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/services"
)

var Module = fx.Provide(
	provideBookingService, provideBookingRepo)

func provideBookingRepo(dbs *infra.Databases) repositories.BookingRepository {
	return repositories.NewBookingRepository(dbs.User)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	serviceRepo repositories.ServiceRepository,
	mailService services.IMailService,
	audit services.AuditServiceInterface,
) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, serviceRepo, mailService, audit)
}
