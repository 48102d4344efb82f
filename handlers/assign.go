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

// AssignHandler serves the agent-assignment endpoints.
type AssignHandler struct {
	Users    user.UserService
	Policies policy.PolicyService
}

func NewAssignHandler(users user.UserService, policies policy.PolicyService) *AssignHandler {
	return &AssignHandler{Users: users, Policies: policies}
}

// ListAgentRefsHandler handles GET /api/assignagents, the id and username
// pairs the assignment form offers.
func (h *AssignHandler) ListAgentRefsHandler(c *gin.Context) {
	agents, err := h.Users.AgentList()
	if err != nil {
		utils.GetLogger().Error("Failed to list agents", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch agents"})
		return
	}
	c.JSON(http.StatusOK, agents)
}

// AssignPolicyHandler handles POST /api/assignagents/assign-policy.
func (h *AssignHandler) AssignPolicyHandler(c *gin.Context) {
	var req struct {
		AgentUsername string `json:"agentUsername" binding:"required"`
		PolicyID      string `json:"policyId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "agentUsername and policyId are required."})
		return
	}

	agent, err := h.Policies.Assign(req.AgentUsername, req.PolicyID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"message": "Policy assigned successfully!",
			"agent": gin.H{
				"id":               agent.ID,
				"username":         agent.Username,
				"assignedPolicies": agent.AssignedPolicies,
			},
		})
	case errors.Is(err, policy.ErrAlreadyAssigned):
		c.JSON(http.StatusConflict, gin.H{"error": "Policy already assigned to this agent."})
	case errors.Is(err, policy.ErrAgentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Agent not found"})
	case errors.Is(err, policy.ErrPolicyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Policy not found"})
	default:
		utils.GetLogger().Error("Failed to assign policy", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign policy"})
	}
}

// AgentPoliciesHandler handles GET /api/assignagents/auth/policies. The agent
// identifies itself with a plain username header.
func (h *AssignHandler) AgentPoliciesHandler(c *gin.Context) {
	username := c.GetHeader("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username header is required."})
		return
	}

	policies, err := h.Users.AgentAssignedPolicies(username)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, policies)
	case errors.Is(err, user.ErrAgentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Agent not found"})
	default:
		utils.GetLogger().Error("Failed to fetch assigned policies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assigned policies"})
	}
}

// AgentsWithPoliciesHandler handles GET /api/assignagents/agents-with-policies.
func (h *AssignHandler) AgentsWithPoliciesHandler(c *gin.Context) {
	agents, err := h.Users.AgentsWithPolicies()
	if err != nil {
		utils.GetLogger().Error("Failed to fetch agents with policies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch agents"})
		return
	}
	c.JSON(http.StatusOK, agents)
}
