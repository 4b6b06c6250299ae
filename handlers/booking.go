package handlers

import (
	"net/http"

	"tutorhive/models"
	"tutorhive/services/booking"
	"tutorhive/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the selection flow: start a session against a
// tutor, pick a date, click slots, confirm.
type BookingHandler struct {
	Flow booking.BookingFlowService
}

// StartSession opens a selection session for the authenticated user against
// a tutor.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		TutorID string `json:"tutorId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Flow.StartSession(c.Request.Context(), c.GetString("userID"), input.TutorID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"sessionID": session.SessionID,
		"tutorId":   session.TutorID,
		"timezone":  session.Timezone,
	})
}

// SelectDate sets the session's active date and returns the day's
// availability.
func (h *BookingHandler) SelectDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	day, err := h.Flow.SelectDate(c.Request.Context(), c.Param("sessionID"), input.Date)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// ClickSlot applies one slot click and returns the updated day view.
func (h *BookingHandler) ClickSlot(c *gin.Context) {
	var slot models.Slot
	if err := c.ShouldBindJSON(&slot); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	day, err := h.Flow.ClickSlot(c.Request.Context(), c.Param("sessionID"), slot)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// Windows returns the current day view without changing any state.
func (h *BookingHandler) Windows(c *gin.Context) {
	day, err := h.Flow.Windows(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// Confirm submits the selected range as a session request.
func (h *BookingHandler) Confirm(c *gin.Context) {
	var input struct {
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Flow.Confirm(c.Request.Context(), c.Param("sessionID"), input.Subject, input.Message)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Cancel abandons the selection session.
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.Flow.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
