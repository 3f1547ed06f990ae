package handlers

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/sabidos/sabidos-api/internal/errors"
)

// FieldError describes one rejected request field
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

var registerOnce sync.Once

// RegisterValidation makes validation errors report JSON field names
func RegisterValidation() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
}

// bindJSON decodes and validates the body into req, answering 400 on failure
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]FieldError, len(validationErrors))
		for i, fe := range validationErrors {
			details[i] = FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()}
		}
		apierrors.BadRequestWithDetails(c, "Validation failed", details)
		return false
	}

	apierrors.BadRequest(c, "Invalid request body")
	return false
}
