package utils

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"

	"Backend-FormBuilder/src/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator. Field names in errors follow the
// json tags. It panics if the custom rules cannot be registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v, err := newValidator()
		if err != nil {
			panic(err)
		}
		validate = v
	})
	return validate
}

func newValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return nil, fmt.Errorf("register notblank validation: %w", err)
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v, nil
}

// ValidationErrors converts err into response entries. It returns nil when
// err is not a validation failure.
func ValidationErrors(err error) []models.FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, models.FieldError{
			Field:   fieldPath(fe.Namespace()),
			Tag:     fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// ParseAndValidate decodes the JSON body into out and validates it. On
// failure the 400 response has already been written and handled is true.
func ParseAndValidate(c *fiber.Ctx, out interface{}) (handled bool, err error) {
	if err := c.BodyParser(out); err != nil {
		return true, HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := Validator().Struct(out); err != nil {
		if fields := ValidationErrors(err); fields != nil {
			return true, c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse{
				Message: "Validation failed",
				Errors:  fields,
			})
		}
		return true, HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return false, nil
}

// fieldPath drops the struct name from a namespace like
// "CreateFormRequest.questions[0].title".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	field := fieldPath(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "notblank":
		return field + " must not be blank"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "http_url", "http_url|len=0":
		return field + " must be an http(s) URL"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
