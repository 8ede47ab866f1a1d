package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Ash-neon/simple-invoice-generator/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string             `json:"error"`
	Details []FieldErrorDetail `json:"details,omitempty"`
}

// FieldErrorDetail names one rejected request field.
type FieldErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondBindError reports a request body or query that could not be bound.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldErrorDetail, len(verrs))
		for i, fe := range verrs {
			details[i] = FieldErrorDetail{Field: fe.Field(), Message: "failed on the '" + fe.Tag() + "' rule"}
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Details: details})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// respondServiceError maps a service error onto a status code. Unexpected
// errors are logged and reported with the generic fallback message.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		details := make([]FieldErrorDetail, len(verr.Fields))
		for i, f := range verr.Fields {
			details[i] = FieldErrorDetail{Field: f.Field, Message: f.Err.Error()}
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.ErrValidation.Error(), Details: details})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Already exists"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
