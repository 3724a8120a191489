package server

import (
	"time"

	"wegotboard/internal/config"
	"wegotboard/internal/handlers"
	"wegotboard/internal/middleware"
	"wegotboard/internal/services"
	"wegotboard/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// New wires services and handlers over st and returns the Fiber app.
// events may be nil, in which case no domain events are published.
func New(cfg *config.Config, st *store.Store, events services.EventPublisher) *fiber.App {
	authService := services.NewAuthService(st.Users, cfg.JWTSecret)
	userService := services.NewUserService(st.Users, st.Products, authService, events)
	reviewService := services.NewReviewService(st.Reviews, st.Users, st.Products, events)
	productService := services.NewProductService(st.Products, st.Categories, st.Tags)

	app := fiber.New(fiber.Config{
		AppName: "wegotboard",
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: cfg.CORSOrigins != "*",
	}))
	app.Use(middleware.LoadIdentity(authService))

	cookies := handlers.CookieOptions{Secure: cfg.IsProduction()}
	handlers.NewUserHandler(userService, cookies).RegisterRoutes(app)
	handlers.NewReviewHandler(reviewService).RegisterRoutes(app)
	handlers.NewProductHandler(productService).RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": events != nil,
		})
	})

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Route " + c.Path() + " not found",
		})
	})

	return app
}
