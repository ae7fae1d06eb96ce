package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondBindingError rejects a malformed request body, naming the offending
// fields when the failure came from struct validation.
func respondBindingError(c *gin.Context, logger *slog.Logger, op string, err error) {
	logger.Error("Failed to bind JSON for "+op, slog.String("error", err.Error()))

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, len(validationErrs))
		for i, fieldErr := range validationErrs {
			fields[i] = fieldErr.Field()
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: missing or invalid fields: %s", strings.Join(fields, ", ")),
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
}
