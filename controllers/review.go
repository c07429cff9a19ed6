package controllers

import (
	"net/http"

	"nailstudio-backend/services"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

func (rc *ReviewController) ListReviews(c *gin.Context) {
	list, err := rc.reviews.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve reviews")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	var input services.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos inválidos")
		return
	}
	review, err := rc.reviews.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "Failed to save review")
		return
	}
	c.JSON(http.StatusCreated, review)
}
