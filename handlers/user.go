package handlers

import (
	"errors"
	"net/http"

	"growlife/services/policy"
	"growlife/services/user"
	"growlife/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the customer-facing account endpoints: profiles,
// purchases and the notification feed.
type UserHandler struct {
	Users    user.UserService
	Policies policy.PolicyService
}

func NewUserHandler(users user.UserService, policies policy.PolicyService) *UserHandler {
	return &UserHandler{Users: users, Policies: policies}
}

// AllUsersHandler handles GET /api/users.
func (h *UserHandler) AllUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// AllPurchasedPoliciesHandler handles GET /api/users/all-purchased-policies.
func (h *UserHandler) AllPurchasedPoliciesHandler(c *gin.Context) {
	purchased, err := h.Policies.AllPurchased()
	if err != nil {
		utils.GetLogger().Error("Failed to list purchased policies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchased policies"})
		return
	}
	c.JSON(http.StatusOK, purchased)
}

// ProfileHandler handles GET /api/users/:username.
func (h *UserHandler) ProfileHandler(c *gin.Context) {
	profile, err := h.Policies.CustomerProfile(c.Param("username"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, profile)
	case errors.Is(err, policy.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		utils.GetLogger().Error("Failed to fetch profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
	}
}

// PurchasePolicyHandler handles POST /api/users/:username/purchase-policy.
func (h *UserHandler) PurchasePolicyHandler(c *gin.Context) {
	var req struct {
		PolicyID string `json:"policyId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "policyId is required."})
		return
	}

	purchased, err := h.Policies.Purchase(c.Param("username"), req.PolicyID)
	var dup policy.AlreadyPurchasedError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"message": "Policy purchased successfully!",
			"policy":  purchased,
		})
	case errors.As(err, &dup):
		c.JSON(http.StatusConflict, gin.H{"error": "You have already purchased " + dup.PolicyName + "."})
	case errors.Is(err, policy.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, policy.ErrPolicyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Policy not found"})
	default:
		utils.GetLogger().Error("Failed to purchase policy", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to purchase policy"})
	}
}

// NotificationsHandler handles GET /api/users/:username/notifications.
func (h *UserHandler) NotificationsHandler(c *gin.Context) {
	notifications, err := h.Policies.Notifications(c.Param("username"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, notifications)
	case errors.Is(err, policy.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		utils.GetLogger().Error("Failed to fetch notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
	}
}
