package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/princinho/arcadiabackend/dto"
)

// GET /api/reviews?product=<slug>
func (a *App) GetReviews() gin.HandlerFunc {
	return func(c *gin.Context) {
		productSlug := strings.TrimSpace(c.Query("product"))
		reviews, err := a.Catalog.Reviews(c.Request.Context(), productSlug)
		if err != nil {
			respondError(c, err, "")
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// POST /api/reviews
func (a *App) CreateReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateReviewDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		id, err := a.Catalog.AddReview(c.Request.Context(), body.Review())
		if err != nil {
			respondError(c, err, "")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"inserted_id": id})
	}
}
