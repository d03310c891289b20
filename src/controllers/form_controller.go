package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"Backend-FormBuilder/src/models"
	"Backend-FormBuilder/src/qrcode"
	"Backend-FormBuilder/src/utils"
)

const formNotFound = "Form not found"

// FormService is what the form endpoints need from services/forms.
type FormService interface {
	Create(ctx context.Context, req models.CreateFormRequest) (*models.Form, error)
	List(ctx context.Context) ([]models.FormSummary, error)
	Get(ctx context.Context, id string) (*models.Form, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Form, error)
	Update(ctx context.Context, id string, req models.UpdateFormRequest) (*models.Form, error)
	Publish(ctx context.Context, id string, published bool) (*models.Form, error)
	Delete(ctx context.Context, id string) error
}

type FormController struct {
	forms         FormService
	responses     ResponseService
	publicBaseURL string
}

// NewFormController builds the form endpoints. publicBaseURL is where the
// respondent-facing pages are served; share links point there.
func NewFormController(forms FormService, responses ResponseService, publicBaseURL string) *FormController {
	return &FormController{forms: forms, responses: responses, publicBaseURL: publicBaseURL}
}

// ListForms godoc
// @Summary      List forms
// @Description  All forms, newest first, with their response counts
// @Tags         forms
// @Produce      json
// @Success      200  {array}   models.FormSummary
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms [get]
func (fc *FormController) ListForms(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	forms, err := fc.forms.List(ctx)
	if err != nil {
		return utils.HandleServiceError(c, err, formNotFound)
	}
	return c.JSON(forms)
}

// GetForm godoc
// @Summary      Get a form by ID
// @Tags         forms
// @Produce      json
// @Param        id   path      string  true  "Form ID"
// @Success      200  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [get]
func (fc *FormController) GetForm(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	form, err := fc.forms.Get(ctx, c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err, formNotFound)
	}
	return c.JSON(form)
}

// GetFormBySlug godoc
// @Summary      Get a published form by slug
// @Description  Only published forms are returned
// @Tags         forms
// @Produce      json
// @Param        slug path      string  true  "Form slug"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/slug/{slug} [get]
func (fc *FormController) GetFormBySlug(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	form, err := fc.forms.GetPublishedBySlug(ctx, c.Params("slug"))
	if err != nil {
		return utils.HandleServiceError(c, err, "Form not found or not published")
	}
	return c.JSON(form)
}

// CreateForm godoc
// @Summary      Create a form
// @Description  Generates the slug and any missing question ids
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body body      models.CreateFormRequest  true  "Form"
// @Success      201  {object}  models.Form
// @Failure      400  {object}  models.ValidationErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms [post]
func (fc *FormController) CreateForm(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	var req models.CreateFormRequest
	if handled, err := utils.ParseAndValidate(c, &req); handled {
		return err
	}
	form, err := fc.forms.Create(ctx, req)
	if err != nil {
		return utils.HandleServiceError(c, err, formNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(form)
}

// UpdateForm godoc
// @Summary      Update a form
// @Description  Only the fields present in the body are changed
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id   path      string                    true  "Form ID"
// @Param        body body      models.UpdateFormRequest  true  "Fields to change"
// @Success      200  {object}  models.Form
// @Failure      400  {object}  models.ValidationErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [put]
func (fc *FormController) UpdateForm(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	var req models.UpdateFormRequest
	if handled, err := utils.ParseAndValidate(c, &req); handled {
		return err
	}
	form, err := fc.forms.Update(ctx, c.Params("id"), req)
	if err != nil {
		return utils.HandleServiceError(c, err, formNotFound)
	}
	return c.JSON(form)
}

// DeleteForm godoc
// @Summary      Delete a form
// @Description  Deletes the form and all of its responses
// @Tags         forms
// @Produce      json
// @Param        id   path      string  true  "Form ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms/{id} [delete]
func (fc *FormController) DeleteForm(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := fc.forms.Delete(ctx, c.Params("id")); err != nil {
		return utils.HandleServiceError(c, err, formNotFound)
	}
	return c.JSON(models.MessageResponse{Message: "Form deleted successfully"})
}

// PublishForm godoc
// @Summary      Publish or unpublish a form
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id   path      string                 true  "Form ID"
// @Param        body body      models.PublishRequest  true  "Publish state"
// @Success      200  {object}  models.PublishResult
// @Failure      400  {object}  models.ValidationErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id}/publish [post]
func (fc *FormController) PublishForm(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	var req models.PublishRequest
	if handled, err := utils.ParseAndValidate(c, &req); handled {
		return err
	}
	form, err := fc.forms.Publish(ctx, c.Params("id"), *req.IsPublished)
	if err != nil {
		return utils.HandleServiceError(c, err, formNotFound)
	}
	msg := "Form unpublished successfully"
	if *req.IsPublished {
		msg = "Form published successfully"
	}
	return c.JSON(models.PublishResult{Message: msg, Form: form})
}

// GetFormResponses godoc
// @Summary      List the responses of a form
// @Tags         forms
// @Produce      json
// @Param        id   path      string  true  "Form ID"
// @Success      200  {array}   models.Response
// @Failure      400  {object}  models.ErrorResponse
// @Router       /forms/{id}/responses [get]
func (fc *FormController) GetFormResponses(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := fc.responses.ListByForm(ctx, c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err, formNotFound)
	}
	return c.JSON(list)
}

// GetFormQRCode godoc
// @Summary      QR code of a form's share link
// @Tags         forms
// @Produce      png
// @Param        id    path   string  true   "Form ID"
// @Param        size  query  int     false  "Image size in pixels (128-1024)"
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id}/qrcode [get]
func (fc *FormController) GetFormQRCode(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	form, err := fc.forms.Get(ctx, c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err, formNotFound)
	}
	img, err := qrcode.PNG(qrcode.ShareLink(fc.publicBaseURL, form.Slug), c.QueryInt("size", qrcode.DefaultSize))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to generate QR code")
	}
	c.Type("png")
	return c.Send(img)
}

const requestTimeout = 5 * time.Second

func requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), requestTimeout)
}
