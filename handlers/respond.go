package handlers

import (
	"errors"
	"net/http"

	"cafe-counter-api/models"

	"github.com/gin-gonic/gin"
)

// respondError maps core error kinds onto HTTP status codes in one
// place, so handlers stay thin and services stay transport-agnostic.
func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrUnauthorized),
		errors.Is(err, models.ErrNotOrderOwner):
		return http.StatusForbidden
	case errors.Is(err, models.ErrItemNotFound),
		errors.Is(err, models.ErrOrderNotFound),
		errors.Is(err, models.ErrLineNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrNoDraft):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicateLogin),
		errors.Is(err, models.ErrDuplicateItem),
		errors.Is(err, models.ErrDuplicateLine),
		errors.Is(err, models.ErrItemInUse),
		errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrPasswordMismatch),
		errors.Is(err, models.ErrUnknownRole),
		errors.Is(err, models.ErrUnknownField),
		errors.Is(err, models.ErrInvalidItemName),
		errors.Is(err, models.ErrInvalidPrice),
		errors.Is(err, models.ErrEmptyOrder),
		errors.Is(err, models.ErrOrderAlreadyPaid):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
