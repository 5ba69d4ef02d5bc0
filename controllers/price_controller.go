package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princinho/arcadiabackend/dto"
)

// POST /api/price
// Body: { "slug": "arcadia-halo", "finish": "gold", "size": "L", "temperature": 4000 }
func (a *App) QuotePrice() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.PriceQuoteDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		price, err := a.Pricing.Quote(c.Request.Context(), body.Slug, body.Selection())
		if err != nil {
			respondError(c, err, "Product not found")
			return
		}

		c.JSON(http.StatusOK, dto.PriceQuoteResponse{Price: price.InexactFloat64()})
	}
}
