package httpserver

import (
	"errors"
	"net/http"

	"ecofinds/internal/domain"

	"github.com/gin-gonic/gin"
)

// writeError maps a domain error onto an HTTP status with a message body.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrAccountExists):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrCannotCheckout), errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
