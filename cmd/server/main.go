package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/travel-home-api/internal/config"
	"github.com/localnerve/travel-home-api/internal/handlers"
	"github.com/localnerve/travel-home-api/internal/middleware"
	"github.com/localnerve/travel-home-api/internal/store"
	"github.com/localnerve/travel-home-api/internal/utils"

	_ "github.com/localnerve/travel-home-api/docs/api" // Swagger docs
)

// @title Travel Home API
// @version 1.0.0
// @description JSON REST API for travel spots, categories, reviews, itineraries and the user profile

// @contact.name API Support
// @contact.url https://github.com/localnerve/travel-home-api
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3001
// @BasePath /api
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the document store
	db := store.Open(cfg.DBPath)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: !cfg.Debug,
	})

	// Global middleware
	app.Use(recover.New())
	if cfg.Debug {
		app.Use(logger.New())
	}
	app.Use(compress.New())
	app.Use(cors.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("travel-home-api")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Uploaded avatars are public files
	app.Static("/uploads", cfg.UploadsDir)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.APIVersion())

	// Create handlers
	healthHandler := &handlers.HealthHandler{}
	spotHandler := &handlers.SpotHandler{Store: db}
	categoryHandler := &handlers.CategoryHandler{Store: db}
	reviewHandler := &handlers.ReviewHandler{Store: db}
	itineraryHandler := &handlers.ItineraryHandler{Store: db}
	profileHandler := &handlers.ProfileHandler{Store: db, UploadsDir: cfg.UploadsDir}

	api.Get("/health", healthHandler.GetHealth)

	// Spot routes; the literal shortcuts must register before /spots/:id
	api.Get("/spots", spotHandler.GetSpots)
	api.Get("/spots/popular", spotHandler.GetPopularSpots)
	api.Get("/spots/featured", spotHandler.GetFeaturedSpots)
	api.Get("/spots/:id/reviews", reviewHandler.GetSpotReviews)
	api.Get("/spots/:id", spotHandler.GetSpot)

	// Category routes
	api.Get("/categories", categoryHandler.GetCategories)
	api.Get("/categories/:id/spots", categoryHandler.GetCategorySpots)
	api.Get("/categories/:id", categoryHandler.GetCategory)

	// Review routes
	api.Get("/reviews", reviewHandler.GetReviews)

	// Itinerary routes
	api.Get("/itineraries", itineraryHandler.GetItineraries)
	api.Post("/itineraries", itineraryHandler.CreateItinerary)
	api.Get("/itineraries/:id", itineraryHandler.GetItinerary)
	api.Put("/itineraries/:id", itineraryHandler.UpdateItinerary)
	api.Delete("/itineraries/:id", itineraryHandler.DeleteItinerary)

	// Search route
	api.Get("/search", spotHandler.Search)

	// Profile routes
	api.Get("/profile", profileHandler.GetProfile)
	api.Put("/profile", profileHandler.UpdateProfile)
	api.Post("/profile/avatar", profileHandler.UploadAvatar)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Not found",
			"The requested endpoint was not found")
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Travel Home API Server starting...")
	log.Printf("Server will be available at: http://localhost:%s", cfg.Port)
	log.Printf("Database path: %s", cfg.DBPath)
	log.Printf("Debug mode: %t", cfg.Debug)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler converts uncaught failures to the response envelope
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	label := "Internal server error"
	message := err.Error()

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
		if code == fiber.StatusNotFound {
			label = "Not found"
		}
	}

	return utils.ErrorResponse(c, code, label, message)
}
