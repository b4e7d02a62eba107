package handlers

import (
	"net/http"

	"carrental/models"
	"carrental/services/review"
	"carrental/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes the public review endpoints.
type ReviewHandler struct {
	Service review.ReviewService
}

// NewReviewHandler builds a ReviewHandler.
func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

// AddReview handles POST /api/review/submit-review.
func (h *ReviewHandler) AddReview(c *gin.Context) {
	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rev, err := h.Service.Submit(input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Review added successfully",
		"review":  rev,
	})
}

// GetReviews handles GET /api/review/get-reviews.
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	reviews, err := h.Service.GetAll()
	if err != nil {
		utils.GetLogger().Error("failed to fetch reviews", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error in getting reviews", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reviews": reviews})
}
