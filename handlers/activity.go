package handlers

import (
	"net/http"

	activityRepo "growlife/database/repository/activity"
	"growlife/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// recentActivityLimit caps the dashboard activity feed.
const recentActivityLimit = 5

// ActivityHandler serves the dashboard activity feed.
type ActivityHandler struct {
	Repo activityRepo.ActivityRepository
}

func NewActivityHandler(repo activityRepo.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{Repo: repo}
}

// RecordActivityHandler handles POST /api/activity.
func (h *ActivityHandler) RecordActivityHandler(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required."})
		return
	}

	entry, err := h.Repo.Create(req.Text)
	if err != nil {
		utils.GetLogger().Error("Failed to record activity", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record activity"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// RecentActivityHandler handles GET /api/activity.
func (h *ActivityHandler) RecentActivityHandler(c *gin.Context) {
	entries, err := h.Repo.Recent(recentActivityLimit)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch activity", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
