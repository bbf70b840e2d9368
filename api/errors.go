package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airadmin/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// respondError maps domain errors to HTTP status codes. NotFound and
// CapacityExceeded must stay distinguishable for callers: absent resource vs
// conflict.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case domain.NotFound(err):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrCapacityBelowBooked):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
