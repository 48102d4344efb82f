package handlers

import (
	"errors"
	"net/http"
	"time"

	"growlife/middleware"
	"growlife/services/claim"
	"growlife/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClaimHandler serves the claim lifecycle endpoints. Every route requires an
// authenticated user; the token's id identifies the claimant.
type ClaimHandler struct {
	Service claim.ClaimService
}

func NewClaimHandler(service claim.ClaimService) *ClaimHandler {
	return &ClaimHandler{Service: service}
}

// FileClaimHandler handles POST /api/claims.
func (h *ClaimHandler) FileClaimHandler(c *gin.Context) {
	var req struct {
		PolicyNumber        string   `json:"policyNumber" binding:"required"`
		IncidentDate        string   `json:"incidentDate" binding:"required"`
		IncidentDetails     string   `json:"incidentDetails" binding:"required"`
		Amount              float64  `json:"amount" binding:"required"`
		SupportingDocuments []string `json:"supportingDocuments"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required claim fields."})
		return
	}
	incidentDate, err := time.Parse("2006-01-02", req.IncidentDate)
	if err != nil {
		incidentDate, err = time.Parse(time.RFC3339, req.IncidentDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid incident date."})
			return
		}
	}

	userID := c.GetString(middleware.CtxUserID)
	filed, err := h.Service.File(userID, claim.FileClaimInput{
		PolicyNumber:        req.PolicyNumber,
		IncidentDate:        incidentDate,
		IncidentDetails:     req.IncidentDetails,
		Amount:              req.Amount,
		SupportingDocuments: req.SupportingDocuments,
	})
	var active claim.ActiveClaimError
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{
			"message": "Claim submitted successfully!",
			"claim":   filed,
		})
	case errors.As(err, &active):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "An active claim already exists for this policy.",
			"claimId": active.ClaimID,
			"status":  active.Status,
		})
	case errors.Is(err, claim.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, claim.ErrPolicyNotLinked):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Policy not found among your purchased policies."})
	case errors.Is(err, claim.ErrPolicyExpired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "This policy has expired and cannot be claimed against."})
	default:
		utils.GetLogger().Error("Failed to file claim", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit claim"})
	}
}

// UserPoliciesHandler handles GET /api/claims/user-policies, the dropdown of
// policies the claimant can file against.
func (h *ClaimHandler) UserPoliciesHandler(c *gin.Context) {
	options, err := h.Service.UserPolicies(c.GetString(middleware.CtxUserID))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"policies": options})
	case errors.Is(err, claim.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		utils.GetLogger().Error("Failed to fetch user policies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch policies"})
	}
}

// AllClaimsHandler handles GET /api/claims/all for reviewers.
func (h *ClaimHandler) AllClaimsHandler(c *gin.Context) {
	claims, err := h.Service.ListAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list claims", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch claims"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"claims": claims})
}

// UserClaimsHandler handles GET /api/claims/user.
func (h *ClaimHandler) UserClaimsHandler(c *gin.Context) {
	claims, err := h.Service.ListForUser(c.GetString(middleware.CtxUserID))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"claims": claims})
	case errors.Is(err, claim.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		utils.GetLogger().Error("Failed to list user claims", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch claims"})
	}
}

// GetClaimHandler handles GET /api/claims/:claimId.
func (h *ClaimHandler) GetClaimHandler(c *gin.Context) {
	view, err := h.Service.Get(c.GetString(middleware.CtxUserID), c.Param("claimId"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"claim": view})
	case errors.Is(err, claim.ErrClaimNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Claim not found"})
	case errors.Is(err, claim.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		utils.GetLogger().Error("Failed to fetch claim", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch claim"})
	}
}

// UpdateClaimStatusHandler handles PUT /api/claims/:claimId/status.
func (h *ClaimHandler) UpdateClaimStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required."})
		return
	}

	changed, err := h.Service.SetStatus(c.Param("claimId"), req.Status)
	var invalid claim.InvalidTransitionError
	switch {
	case err == nil && changed:
		c.JSON(http.StatusOK, gin.H{"message": "Claim status updated successfully"})
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Claim already has this status"})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cannot move a claim from " + invalid.From + " to " + invalid.To + ".",
		})
	case errors.Is(err, claim.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown claim status."})
	case errors.Is(err, claim.ErrClaimNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Claim not found"})
	default:
		utils.GetLogger().Error("Failed to update claim status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update claim status"})
	}
}

// DeleteClaimHandler handles DELETE /api/claims/:claimId.
func (h *ClaimHandler) DeleteClaimHandler(c *gin.Context) {
	err := h.Service.Delete(c.Param("claimId"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Claim deleted successfully"})
	case errors.Is(err, claim.ErrClaimNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Claim not found"})
	default:
		utils.GetLogger().Error("Failed to delete claim", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete claim"})
	}
}
