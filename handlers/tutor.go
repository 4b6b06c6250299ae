package handlers

import (
	"errors"
	"net/http"
	"time"

	sessionRepo "tutorhive/database/repository/session"
	tutorRepo "tutorhive/database/repository/tutor"
	"tutorhive/models"
	"tutorhive/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TutorHandler serves tutor records and their public booking data.
type TutorHandler struct {
	Repo     tutorRepo.TutorRepository
	Sessions sessionRepo.SessionRepository
}

// Register provisions a tutor record and returns a bearer token scoped to
// managing it. Called by the accounts backend when a tutor finishes signup.
func (h *TutorHandler) Register(c *gin.Context) {
	var input struct {
		Name       string   `json:"name" binding:"required"`
		Subjects   []string `json:"subjects"`
		HourlyRate float64  `json:"hourlyRate" binding:"required"`
		Currency   string   `json:"currency" binding:"required"`
		Timezone   string   `json:"timezone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if _, err := time.LoadLocation(input.Timezone); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid timezone", input.Timezone)
		return
	}

	tutor := models.Tutor{
		ID:         uuid.New().String(),
		Name:       input.Name,
		Subjects:   input.Subjects,
		HourlyRate: input.HourlyRate,
		Currency:   input.Currency,
		Timezone:   input.Timezone,
	}
	if err := h.Repo.Create(c.Request.Context(), tutor); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create tutor", err.Error())
		return
	}

	token, err := utils.GenerateToken(tutor.ID, "tutor", 30*24*time.Hour)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tutor": tutor, "token": token})
}

// GetByID returns the tutor's public profile.
func (h *TutorHandler) GetByID(c *gin.Context) {
	tutor, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, tutorRepo.ErrTutorNotFound) {
			utils.JSONError(c, http.StatusNotFound, "tutor not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load tutor", err.Error())
		return
	}
	c.JSON(http.StatusOK, tutor)
}

// BookedIntervals returns the tutor's calendar footprint for one date,
// evaluated in the tutor's timezone.
func (h *TutorHandler) BookedIntervals(c *gin.Context) {
	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}

	tutor, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, tutorRepo.ErrTutorNotFound) {
			utils.JSONError(c, http.StatusNotFound, "tutor not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load tutor", err.Error())
		return
	}

	intervals, err := h.Sessions.ListIntervals(c.Request.Context(), tutor.ID, date, tutor.Location())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list booked intervals", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "booked": intervals})
}

// GuestToken issues a short-lived user token for guest checkout.
func (h *TutorHandler) GuestToken(c *gin.Context) {
	token, err := utils.GenerateToken(uuid.New().String(), "user", 24*time.Hour)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
