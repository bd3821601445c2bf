package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Error responses carry a stable machine-readable category in "error"
// and a human-readable "message". Internal details stay in the server
// log.
func validationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   "validation_error",
		"message": message,
	})
}

func notFoundError(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   "not_found",
		"message": message,
	})
}

func internalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "internal_error",
		"message": message,
	})
}

func stringOr(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

var queryDateLayouts = []string{"2006-01-02", time.RFC3339}

// queryDate parses an optional date query parameter. On a malformed
// value it writes a validation error and returns ok=false.
func queryDate(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	for _, layout := range queryDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, true
		}
	}
	validationError(c, name+" must be YYYY-MM-DD or RFC3339")
	return nil, false
}
