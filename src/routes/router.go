package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"

	"Backend-FormBuilder/src/controllers"
	"Backend-FormBuilder/src/logger"
	"Backend-FormBuilder/src/metrics"
	"Backend-FormBuilder/src/models"
)

// Deps is everything the HTTP layer is built from. Metrics may be nil.
type Deps struct {
	Forms       *controllers.FormController
	Responses   *controllers.ResponseController
	Metrics     *metrics.Metrics
	Log         *logrus.Entry
	CORSOrigins string
}

func InitRoutes(app *fiber.App, d Deps) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     d.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false,
	}))
	app.Use(logger.Middleware(d.Log))
	if d.Metrics != nil {
		app.Use(d.Metrics.Middleware())
		app.Get("/metrics", d.Metrics.Handler())
	}

	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.MessageResponse{Message: "Server is running successfully!"})
	})
	FormRoutes(api, d.Forms)
	ResponseRoutes(api, d.Responses)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(models.MessageResponse{Message: "Route not found"})
	})
}
