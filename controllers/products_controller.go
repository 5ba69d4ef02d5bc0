package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/products
func (a *App) GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := a.Catalog.Products(c.Request.Context())
		if err != nil {
			respondError(c, err, "")
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/:slug
func (a *App) GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := a.Catalog.ProductBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, err, "Product not found")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
