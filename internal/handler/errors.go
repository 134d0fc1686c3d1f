package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-study-scheduler/internal/domain"
)

const (
	errorKindNotFound   = "not_found"
	errorKindValidation = "validation_error"
	errorKindProcessing = "processing_error"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, kind, message string) {
	c.JSON(status, ErrorResponse{
		Error:   kind,
		Message: message,
	})
}

// respondServiceError maps domain errors onto HTTP statuses. Unexpected
// errors are logged and reported with a generic message.
func respondServiceError(c *gin.Context, operation string, err error) {
	ctx := c.Request.Context()

	switch {
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, errorKindNotFound, err.Error())
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, errorKindValidation, err.Error())
	default:
		slog.ErrorContext(ctx, "operation failed",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, errorKindProcessing, operation+" failed")
	}
}
