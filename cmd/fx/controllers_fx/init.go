package controllers_fx

import (
	"go.uber.org/fx"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewBookingController),
	fx.Provide(controllers.NewRecommendationController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewContactController),
	fx.Provide(controllers.NewNewsletterController))
