package routes

import (
	"time"

	config "github.com/alexvr-dev/code_tutors/configs"
	"github.com/alexvr-dev/code_tutors/handlers"
	"github.com/alexvr-dev/code_tutors/middleware"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Clients render booking forms from the configured choice sets.
	api.Get("/choices", func(c *fiber.Ctx) error {
		durations := config.DurationChoices()
		minutes := make([]int, 0, len(durations))
		for _, d := range durations {
			minutes = append(minutes, int(d/time.Minute))
		}

		return c.JSON(fiber.Map{
			"languages":        config.LanguageChoices(),
			"duration_minutes": minutes,
			"frequencies":      config.FrequencyChoices(),
		})
	})

	api.Get("/tutors", middleware.Protected(), handlers.ListTutors)
	api.Get("/tutees", middleware.Protected(), middleware.AdminRequired(), handlers.ListTutees)
}
