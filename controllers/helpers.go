package controllers

import (
	"errors"
	"strings"

	"slime-shop/models"

	"github.com/go-playground/validator/v10"
)

// bindError turns a Gin binding failure into the error envelope, with
// per-field messages when the failure came from validation tags.
func bindError(err error) models.ErrorResponse {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]models.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, models.FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: fieldMessage(fe),
			})
		}
		return models.ErrorResponse{Message: "Validation failed", Details: details}
	}
	return models.ErrorResponse{Message: "Invalid request body"}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "gte":
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
