package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-FormBuilder/src/controllers"
)

func ResponseRoutes(router fiber.Router, ctrl *controllers.ResponseController) {
	responses := router.Group("/responses")

	responses.Post("/", ctrl.SubmitResponse)
	responses.Get("/analytics/:formId", ctrl.GetAnalytics)
	responses.Get("/form/:slug", ctrl.GetResponsesBySlug)
	responses.Get("/:id", ctrl.GetResponse)
	responses.Delete("/:id", ctrl.DeleteResponse)
}
