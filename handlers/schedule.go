package handlers

import (
	"errors"
	"net/http"

	tutorRepo "tutorhive/database/repository/tutor"
	"tutorhive/models"
	"tutorhive/services/schedule"
	"tutorhive/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves a tutor's recurring weekly availability.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// Get returns the tutor's weekly schedule and its revision.
func (h *ScheduleHandler) Get(c *gin.Context) {
	sched, rev, err := h.Service.GetWeeklySchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, tutorRepo.ErrTutorNotFound) {
			utils.JSONError(c, http.StatusNotFound, "tutor not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": sched, "revision": rev})
}

// Put replaces the tutor's weekly schedule wholesale. Only the owning tutor
// may edit it.
func (h *ScheduleHandler) Put(c *gin.Context) {
	tutorID := c.Param("id")
	if c.GetString("userID") != tutorID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your schedule"})
		return
	}

	var sched models.WeeklySchedule
	if err := c.ShouldBindJSON(&sched); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	normalized, err := h.Service.SaveWeeklySchedule(c.Request.Context(), tutorID, sched)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidSchedule):
			utils.JSONError(c, http.StatusBadRequest, "invalid schedule", err.Error())
		case errors.Is(err, tutorRepo.ErrTutorNotFound):
			utils.JSONError(c, http.StatusNotFound, "tutor not found", tutorID)
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to save schedule", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": normalized})
}
