package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"Backend-FormBuilder/src/models"
	"Backend-FormBuilder/src/utils"
)

const responseNotFound = "Response not found"

// ResponseService is what the response endpoints need from services/responses.
type ResponseService interface {
	Submit(ctx context.Context, req models.SubmitResponseRequest, info models.SubmitterInfo) (*models.SubmitResult, error)
	Get(ctx context.Context, id string) (*models.Response, error)
	ListByForm(ctx context.Context, formID string) ([]models.Response, error)
	ListBySlug(ctx context.Context, slug string) ([]models.Response, error)
	Delete(ctx context.Context, id string) error
	Analytics(ctx context.Context, formID string) (models.FormAnalytics, error)
}

type ResponseController struct {
	responses ResponseService
}

func NewResponseController(responses ResponseService) *ResponseController {
	return &ResponseController{responses: responses}
}

// SubmitResponse godoc
// @Summary      Submit answers to a published form
// @Description  Scores the answers and stores the response
// @Tags         responses
// @Accept       json
// @Produce      json
// @Param        body body      models.SubmitResponseRequest  true  "Answers"
// @Success      201  {object}  models.SubmitResult
// @Failure      400  {object}  models.ValidationErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /responses [post]
func (rc *ResponseController) SubmitResponse(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	var req models.SubmitResponseRequest
	if handled, err := utils.ParseAndValidate(c, &req); handled {
		return err
	}
	info := models.SubmitterInfo{
		UserAgent: c.Get(fiber.HeaderUserAgent),
		IPAddress: c.IP(),
		SessionID: req.SessionID,
	}
	res, err := rc.responses.Submit(ctx, req, info)
	if err != nil {
		return utils.HandleServiceError(c, err, "Form not found or not published")
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// GetResponse godoc
// @Summary      Get a response by ID
// @Tags         responses
// @Produce      json
// @Param        id   path      string  true  "Response ID"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /responses/{id} [get]
func (rc *ResponseController) GetResponse(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := rc.responses.Get(ctx, c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err, responseNotFound)
	}
	return c.JSON(resp)
}

// GetResponsesBySlug godoc
// @Summary      List the responses submitted under a slug
// @Tags         responses
// @Produce      json
// @Param        slug path      string  true  "Form slug"
// @Success      200  {array}   models.Response
// @Router       /responses/form/{slug} [get]
func (rc *ResponseController) GetResponsesBySlug(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := rc.responses.ListBySlug(ctx, c.Params("slug"))
	if err != nil {
		return utils.HandleServiceError(c, err, responseNotFound)
	}
	return c.JSON(list)
}

// DeleteResponse godoc
// @Summary      Delete a response
// @Tags         responses
// @Produce      json
// @Param        id   path      string  true  "Response ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /responses/{id} [delete]
func (rc *ResponseController) DeleteResponse(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := rc.responses.Delete(ctx, c.Params("id")); err != nil {
		return utils.HandleServiceError(c, err, responseNotFound)
	}
	return c.JSON(models.MessageResponse{Message: "Response deleted successfully"})
}

// GetAnalytics godoc
// @Summary      Analytics of a form
// @Description  Recomputed from the current responses on every call
// @Tags         responses
// @Produce      json
// @Param        formId path      string  true  "Form ID"
// @Success      200    {object}  models.FormAnalytics
// @Failure      400    {object}  models.ErrorResponse
// @Router       /responses/analytics/{formId} [get]
func (rc *ResponseController) GetAnalytics(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	out, err := rc.responses.Analytics(ctx, c.Params("formId"))
	if err != nil {
		return utils.HandleServiceError(c, err, formNotFound)
	}
	return c.JSON(out)
}
