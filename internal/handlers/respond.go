// Package handlers contains HTTP request handlers for the donation platform.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/repository"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// parseID reads the numeric :id route parameter, responding 400 itself when
// the value is not an integer.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// RespondError writes a JSON error body with a stable message.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// LogAndRespondError logs the underlying error and responds with a stable
// message; internals never reach the client.
func LogAndRespondError(c *gin.Context, status int, err error, message string) {
	log.Error().Err(err).Str("path", c.FullPath()).Str("method", c.Request.Method).Msg(message)
	RespondError(c, status, message)
}

// RespondServiceError maps the platform error taxonomy onto status codes.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrDuplicate):
		RespondError(c, http.StatusBadRequest, "already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, service.ErrInvalidToken):
		RespondError(c, http.StatusUnauthorized, "invalid token")
	case errors.Is(err, service.ErrInvalidStatus):
		RespondError(c, http.StatusBadRequest, "invalid status")
	default:
		LogAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
	}
}
