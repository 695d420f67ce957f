package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/emrekoc/acadport/internal/app/models/dto"
)

// BindJSON binds and validates a JSON body, writing the standard validation
// error envelope on failure. Returns false when the request was rejected.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(formatValidationErrors(validationErrs)))
			return false
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

func formatValidationErrors(errs validator.ValidationErrors) *dto.ErrorDetail {
	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fmt.Sprintf("%s: failed on '%s'", fe.Field(), fe.Tag()))
	}

	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Request validation failed")
	errorDetail = errorDetail.WithDetails(strings.Join(fields, "; "))
	if len(errs) == 1 {
		errorDetail = errorDetail.WithField(errs[0].Field())
	}
	return errorDetail
}
