package controllers

import (
	"errors"
	"net/http"

	"mealplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// validation 422, authorization 403, not found 404, conflict 409, rest 500.
func respondServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Validation failed",
			"errors":  verr.Fields,
		})
		return
	}

	var aerr *services.AuthorizationError
	if errors.As(err, &aerr) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Access denied",
			"error":   aerr.Message,
		})
		return
	}

	var nerr *services.NotFoundError
	if errors.As(err, &nerr) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Not found",
			"error":   nerr.Error(),
		})
		return
	}

	var cerr *services.ConflictError
	if errors.As(err, &cerr) {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Conflict",
			"error":   cerr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Internal server error",
		"error":   err.Error(),
	})
}

// currentUserID pulls the authenticated user id set by the auth middleware.
// Writes a 401 response and returns false when it is missing.
func currentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return 0, false
	}
	return userID.(uint), true
}
