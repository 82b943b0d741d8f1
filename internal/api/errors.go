package api

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/dataplatform-hub/search/internal/elasticsearch"
	"github.com/dataplatform-hub/search/internal/logger"
)

const errorDomain = "global"

// ValidationErrorSchema is one field-level validation problem. Responses
// carry a list of them under HTTP 422.
type ValidationErrorSchema struct {
	Code   string   `json:"code"`
	Detail string   `json:"detail"`
	Source []string `json:"source"`
}

// ErrorSchema is a non-validation service error response.
type ErrorSchema struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

func newValidationError(source, detail string) ValidationErrorSchema {
	return ValidationErrorSchema{
		Code:   errorDomain + ".validation_error",
		Detail: detail,
		Source: []string{source},
	}
}

// respondValidationError aborts the request with a single field error.
func respondValidationError(c *gin.Context, source, detail string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, []ValidationErrorSchema{
		newValidationError(source, detail),
	})
}

// respondBindingError converts query binding failures into the validation
// error response, one entry per failed field.
func respondBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		schemas := make([]ValidationErrorSchema, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			schemas = append(schemas, newValidationError(fieldErr.Field(), bindingDetail(fieldErr)))
		}
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, schemas)
		return
	}

	respondValidationError(c, "query", err.Error())
}

func bindingDetail(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "oneof":
		return "must be one of: " + fieldErr.Param()
	case "required":
		return "field is required"
	case "min":
		return "must be greater than or equal to " + fieldErr.Param()
	default:
		return "invalid value"
	}
}

func respondNotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, ErrorSchema{
		Code:    errorDomain + ".not_found",
		Details: "Requested resource is not found",
	})
}

// respondInternalError logs the failure and returns an opaque error so
// store internals never leak to clients.
func respondInternalError(c *gin.Context, log logger.Logger, err error) {
	log.Error("Request failed",
		logger.String("method", c.Request.Method),
		logger.String("path", c.Request.URL.Path),
		logger.Error(err),
	)

	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorSchema{
		Code:    errorDomain + ".unhandled_exception",
		Details: "Unexpected Internal Server Error",
	})
}

// respondEntityError maps a service error onto the right response.
func respondEntityError(c *gin.Context, log logger.Logger, err error) {
	if errors.Is(err, elasticsearch.ErrNotFound) {
		respondNotFound(c)
		return
	}

	respondInternalError(c, log, err)
}

// Validation errors reference fields by their query parameter names.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
}
