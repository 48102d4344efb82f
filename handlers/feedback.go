package handlers

import (
	"net/http"
	"time"

	feedbackRepo "growlife/database/repository/feedback"
	"growlife/models"
	"growlife/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FeedbackHandler serves the public feedback endpoints.
type FeedbackHandler struct {
	Repo feedbackRepo.FeedbackRepository
}

func NewFeedbackHandler(repo feedbackRepo.FeedbackRepository) *FeedbackHandler {
	return &FeedbackHandler{Repo: repo}
}

// SubmitFeedbackHandler handles POST /api/feedback.
func (h *FeedbackHandler) SubmitFeedbackHandler(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Message string `json:"message" binding:"required"`
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, message and a rating from 1 to 5 are required."})
		return
	}

	feedback := &models.Feedback{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		Rating:    req.Rating,
		CreatedAt: time.Now(),
	}
	if err := h.Repo.Create(feedback); err != nil {
		utils.GetLogger().Error("Failed to store feedback", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit feedback"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Thank you for your feedback!"})
}

// ListFeedbackHandler handles GET /api/feedback.
func (h *FeedbackHandler) ListFeedbackHandler(c *gin.Context) {
	feedback, err := h.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to fetch feedback", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}
	c.JSON(http.StatusOK, feedback)
}
