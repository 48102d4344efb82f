package handlers

import (
	"errors"
	"net/http"

	"growlife/middleware"
	"growlife/services/user"
	"growlife/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the admin and agent dashboard aggregates.
type DashboardHandler struct {
	Service user.UserService
}

func NewDashboardHandler(service user.UserService) *DashboardHandler {
	return &DashboardHandler{Service: service}
}

// AdminDashboardHandler handles GET /api/admin/dashboard.
func (h *DashboardHandler) AdminDashboardHandler(c *gin.Context) {
	stats, err := h.Service.AdminDashboard()
	if err != nil {
		utils.GetLogger().Error("Failed to compute dashboard stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AgentStatsHandler handles GET /api/agent/dashboard/my-stats for the
// authenticated agent.
func (h *DashboardHandler) AgentStatsHandler(c *gin.Context) {
	stats, err := h.Service.AgentStats(
		c.GetString(middleware.CtxUserID),
		c.GetString(middleware.CtxUsername),
	)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, stats)
	case errors.Is(err, user.ErrAgentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Agent profile not found."})
	default:
		utils.GetLogger().Error("Failed to compute agent stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch agent stats"})
	}
}
