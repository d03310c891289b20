package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-FormBuilder/src/controllers"
)

func FormRoutes(router fiber.Router, ctrl *controllers.FormController) {
	forms := router.Group("/forms")

	forms.Get("/", ctrl.ListForms)
	forms.Post("/", ctrl.CreateForm)
	forms.Get("/slug/:slug", ctrl.GetFormBySlug) // public form page
	forms.Get("/:id", ctrl.GetForm)
	forms.Put("/:id", ctrl.UpdateForm)
	forms.Delete("/:id", ctrl.DeleteForm)
	forms.Post("/:id/publish", ctrl.PublishForm)
	forms.Get("/:id/responses", ctrl.GetFormResponses)
	forms.Get("/:id/qrcode", ctrl.GetFormQRCode)
}
