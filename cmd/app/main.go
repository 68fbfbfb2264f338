package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/web-source-dev/Map-My-Soul-Backend/cmd/fx/account_fx"
	"github.com/web-source-dev/Map-My-Soul-Backend/cmd/fx/audit_fx"
	"github.com/web-source-dev/Map-My-Soul-Backend/cmd/fx/booking_fx"
	"github.com/web-source-dev/Map-My-Soul-Backend/cmd/fx/catalog_fx"
	"github.com/web-source-dev/Map-My-Soul-Backend/cmd/fx/contact_fx"
	"github.com/web-source-dev/Map-My-Soul-Backend/cmd/fx/controllers_fx"
	"github.com/web-source-dev/Map-My-Soul-Backend/cmd/fx/db_fx"
	"github.com/web-source-dev/Map-My-Soul-Backend/cmd/fx/mail_fx"
	"github.com/web-source-dev/Map-My-Soul-Backend/cmd/fx/memcache_fx"
	"github.com/web-source-dev/Map-My-Soul-Backend/cmd/fx/newsletter_fx"
	"github.com/web-source-dev/Map-My-Soul-Backend/cmd/fx/profile_fx"
	"github.com/web-source-dev/Map-My-Soul-Backend/cmd/fx/quiz_fx"
	"github.com/web-source-dev/Map-My-Soul-Backend/cmd/fx/recommendation_fx"
	"github.com/web-source-dev/Map-My-Soul-Backend/cmd/fx/retention_fx"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/api/controllers"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		audit_fx.Module,
		quiz_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		booking_fx.Module,
		recommendation_fx.Module,
		profile_fx.Module,
		contact_fx.Module,
		newsletter_fx.Module,
		retention_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	quizController *controllers.QuizController,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	bookingController *controllers.BookingController,
	recommendationController *controllers.RecommendationController,
	profileController *controllers.ProfileController,
	contactController *controllers.ContactController,
	newsletterController *controllers.NewsletterController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		quizController, accountController, catalogController, bookingController,
		recommendationController, profileController, contactController, newsletterController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	quizController *controllers.QuizController,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	bookingController *controllers.BookingController,
	recommendationController *controllers.RecommendationController,
	profileController *controllers.ProfileController,
	contactController *controllers.ContactController,
	newsletterController *controllers.NewsletterController) {

	quizGroup := r.Group("/quiz")
	quizGroup.POST("/submit", middleware.OptionalJWTMiddleware(), quizController.Submit)
	quizGroup.GET("/results/:sessionId", quizController.Results)
	quizGroup.GET("/analytics", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), quizController.Analytics)
	quizGroup.DELETE("/session/:sessionId", quizController.DeleteSession)
	quizGroup.GET("/health", quizController.Health)

	authGroup := r.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)
	authGroup.POST("/forgot-password", accountController.ForgotPassword)
	authGroup.POST("/reset-password", accountController.ResetPassword)

	servicesGroup := r.Group("/services")
	servicesGroup.GET("", catalogController.ListServices)
	servicesGroup.GET("/:id", catalogController.GetService)
	servicesGroup.POST("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), catalogController.CreateService)

	productsGroup := r.Group("/products")
	productsGroup.GET("", catalogController.ListProducts)
	productsGroup.GET("/:id", catalogController.GetProduct)
	productsGroup.POST("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), catalogController.CreateProduct)

	podcastsGroup := r.Group("/podcasts")
	podcastsGroup.GET("", catalogController.ListPodcasts)
	podcastsGroup.GET("/:id", catalogController.GetPodcast)
	podcastsGroup.POST("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), catalogController.CreatePodcast)

	bookingsGroup := r.Group("/bookings")
	bookingsGroup.GET("/availability/:id", bookingController.Availability)
	bookingsGroup.Use(middleware.JWTAuthMiddleware())
	bookingsGroup.POST("", bookingController.Create)
	bookingsGroup.GET("/my", bookingController.ListMine)
	bookingsGroup.PUT("/:id/cancel", bookingController.Cancel)

	recommendationsGroup := r.Group("/recommendations", middleware.JWTAuthMiddleware())
	recommendationsGroup.GET("", recommendationController.Latest)
	recommendationsGroup.GET("/history", recommendationController.History)

	profileGroup := r.Group("/profile", middleware.JWTAuthMiddleware())
	profileGroup.GET("", profileController.Get)
	profileGroup.POST("/cart", profileController.AddToCart)
	profileGroup.DELETE("/cart/:productId", profileController.RemoveFromCart)
	profileGroup.POST("/wishlist", profileController.AddToWishlist)
	profileGroup.DELETE("/wishlist/:productId", profileController.RemoveFromWishlist)

	r.POST("/contact", contactController.Submit)

	newsletterGroup := r.Group("/newsletter")
	newsletterGroup.POST("/subscribe", middleware.OptionalJWTMiddleware(), newsletterController.Subscribe)
	newsletterGroup.POST("/unsubscribe", newsletterController.Unsubscribe)
}
