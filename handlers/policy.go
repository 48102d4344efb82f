package handlers

import (
	"errors"
	"net/http"
	"time"

	"growlife/services/policy"
	"growlife/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PolicyHandler serves the policy catalog CRUD endpoints.
type PolicyHandler struct {
	Service policy.PolicyService
}

func NewPolicyHandler(service policy.PolicyService) *PolicyHandler {
	return &PolicyHandler{Service: service}
}

type policyRequest struct {
	PolicyName        string   `json:"policyName" binding:"required"`
	PolicyDescription string   `json:"policyDescription"`
	Premium           string   `json:"premium"`
	PolicySpecs       []string `json:"policySpecs"`
	Category          string   `json:"category" binding:"required"`
	Customer          string   `json:"customer"`
	Agent             string   `json:"agent"`
	ValidUntil        string   `json:"validUntil"`
}

func (r policyRequest) toInput() (policy.PolicyInput, error) {
	in := policy.PolicyInput{
		PolicyName:        r.PolicyName,
		PolicyDescription: r.PolicyDescription,
		Premium:           r.Premium,
		PolicySpecs:       r.PolicySpecs,
		Category:          r.Category,
		Customer:          r.Customer,
		Agent:             r.Agent,
	}
	if r.ValidUntil != "" {
		parsed, err := time.Parse("2006-01-02", r.ValidUntil)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, r.ValidUntil)
			if err != nil {
				return in, err
			}
		}
		in.ValidUntil = parsed
	}
	return in, nil
}

// ListPoliciesHandler handles GET /api/policies with an optional category filter.
func (h *PolicyHandler) ListPoliciesHandler(c *gin.Context) {
	policies, err := h.Service.List(c.Query("category"))
	if err != nil {
		utils.GetLogger().Error("Failed to list policies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch policies"})
		return
	}
	c.JSON(http.StatusOK, policies)
}

// GetPolicyHandler handles GET /api/policies/:id.
func (h *PolicyHandler) GetPolicyHandler(c *gin.Context) {
	p, err := h.Service.Get(c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, p)
	case errors.Is(err, policy.ErrPolicyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Policy not found"})
	default:
		utils.GetLogger().Error("Failed to fetch policy", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch policy"})
	}
}

// CreatePolicyHandler handles POST /api/policies.
func (h *PolicyHandler) CreatePolicyHandler(c *gin.Context) {
	var req policyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Policy name and category are required."})
		return
	}
	in, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid validUntil date."})
		return
	}

	created, err := h.Service.Create(in)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, created)
	case errors.Is(err, policy.ErrInvalidCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid policy category."})
	default:
		utils.GetLogger().Error("Failed to create policy", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create policy"})
	}
}

// UpdatePolicyHandler handles PUT /api/policies/:id. Category and displayId
// stay fixed after creation.
func (h *PolicyHandler) UpdatePolicyHandler(c *gin.Context) {
	var req policyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Policy name and category are required."})
		return
	}
	in, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid validUntil date."})
		return
	}

	updated, err := h.Service.Update(c.Param("id"), in)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, updated)
	case errors.Is(err, policy.ErrPolicyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Policy not found"})
	default:
		utils.GetLogger().Error("Failed to update policy", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update policy"})
	}
}

// DeletePolicyHandler handles DELETE /api/policies/:id.
func (h *PolicyHandler) DeletePolicyHandler(c *gin.Context) {
	err := h.Service.Delete(c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Policy deleted successfully"})
	case errors.Is(err, policy.ErrPolicyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Policy not found"})
	default:
		utils.GetLogger().Error("Failed to delete policy", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete policy"})
	}
}
