package httpapi

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"weather-now/internal/common"
	"weather-now/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, indexFile string) {
	app.Get("/", func(c *fiber.Ctx) error {
		page, err := os.ReadFile(indexFile)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				Type("txt").
				SendString("failed to load page")
		}
		c.Type("html")
		return c.Send(page)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-now",
		})
	})

	app.Get("/weather", func(c *fiber.Ctx) error {
		q := weatherQuery{Location: c.Query("location")}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Location parameter missing")
		}

		report, err := service.Fetch(c.UserContext(), q.Location)
		if err != nil {
			// Credential problems map to 401, everything else to 404.
			status := fiber.StatusNotFound
			if common.HasAny(err.Error(), "API key") {
				status = fiber.StatusUnauthorized
			}
			return fiber.NewError(status, err.Error())
		}

		return c.JSON(report)
	})

	// Anything not routed above is a plain-text 404.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Type("txt").SendString("Not Found")
	})
}

// weatherQuery holds the query parameters for the weather endpoint.
type weatherQuery struct {
	Location string `validate:"required"`
}
