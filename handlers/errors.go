package handlers

import (
	"errors"
	"net/http"

	"tutorhive/services/availability"
	"tutorhive/services/booking"
	"tutorhive/utils"

	"github.com/gin-gonic/gin"
)

// respondBookingError maps booking-flow errors onto HTTP responses.
// Selection rejections are recoverable user input problems and carry their
// code so the client can render them inline.
func respondBookingError(c *gin.Context, err error) {
	var selErr *availability.SelectionError
	switch {
	case errors.As(err, &selErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": selErr.Message,
			"code":  selErr.Code,
		})
	case errors.Is(err, booking.ErrSelectionSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrNoRangeSelected):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrUnconfirmedBookings):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
