package handlers

import (
	"errors"
	"fmt"
	"net/http"

	notificationRepo "tutorhive/database/repository/notification"
	sessionRepo "tutorhive/database/repository/session"
	"tutorhive/models"
	"tutorhive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler serves booked session requests and their lifecycle.
type SessionHandler struct {
	Repo   sessionRepo.SessionRepository
	Notifs notificationRepo.NotificationRepository
}

func (h *SessionHandler) load(c *gin.Context) (*models.SessionRequest, bool) {
	req, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "session not found", c.Param("id"))
			return nil, false
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load session", err.Error())
		return nil, false
	}
	return req, true
}

// Get returns a session request to either of its parties.
func (h *SessionHandler) Get(c *gin.Context) {
	req, ok := h.load(c)
	if !ok {
		return
	}
	userID := c.GetString("userID")
	if userID != req.UserID && userID != req.TutorID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	c.JSON(http.StatusOK, req)
}

// Respond lets the owning tutor accept or decline a pending session request.
// The requesting user gets an in-app notification either way.
func (h *SessionHandler) Respond(c *gin.Context) {
	var input struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	var status, title string
	switch input.Action {
	case "accept":
		status, title = models.SessionConfirmed, "Session confirmed"
	case "decline":
		status, title = models.SessionDeclined, "Session declined"
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid action", "expected accept or decline")
		return
	}

	req, ok := h.load(c)
	if !ok {
		return
	}
	if c.GetString("userID") != req.TutorID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the tutor can respond"})
		return
	}
	if req.Status != models.SessionPending {
		c.JSON(http.StatusConflict, gin.H{"error": "session is not pending"})
		return
	}

	if err := h.Repo.UpdateStatus(c.Request.Context(), req.ID, status); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update session", err.Error())
		return
	}

	body := fmt.Sprintf("Your %s session on %s", req.Subject, req.Start.Format("Jan 2 at 3:04 PM"))
	if err := h.Notifs.Insert(c.Request.Context(), models.Notification{
		Target:    "user",
		TargetID:  req.UserID,
		Title:     title,
		Body:      body,
		SessionID: req.ID,
	}); err != nil {
		utils.GetLogger().Warn("failed to write response notification", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"id": req.ID, "status": status})
}

// Cancel lets the requesting user cancel a pending or confirmed session,
// releasing its calendar footprint.
func (h *SessionHandler) Cancel(c *gin.Context) {
	req, ok := h.load(c)
	if !ok {
		return
	}
	if c.GetString("userID") != req.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the requesting user can cancel"})
		return
	}
	if req.Status != models.SessionPending && req.Status != models.SessionConfirmed {
		c.JSON(http.StatusConflict, gin.H{"error": "session cannot be cancelled"})
		return
	}

	if err := h.Repo.UpdateStatus(c.Request.Context(), req.ID, models.SessionCancelled); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel session", err.Error())
		return
	}

	if err := h.Notifs.Insert(c.Request.Context(), models.Notification{
		Target:    "tutor",
		TargetID:  req.TutorID,
		Title:     "Session cancelled",
		Body:      fmt.Sprintf("The session on %s was cancelled", req.Start.Format("Jan 2 at 3:04 PM")),
		SessionID: req.ID,
	}); err != nil {
		utils.GetLogger().Warn("failed to write cancellation notification", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"id": req.ID, "status": models.SessionCancelled})
}

// Notifications lists the caller's in-app notifications, newest first.
func (h *SessionHandler) Notifications(c *gin.Context) {
	target := c.GetString("role")
	if target != "user" && target != "tutor" {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	out, err := h.Notifs.ListByTarget(c.Request.Context(), target, c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": out})
}
