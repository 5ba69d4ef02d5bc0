package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/blog
func (a *App) GetBlogPosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := a.Catalog.BlogPosts(c.Request.Context())
		if err != nil {
			respondError(c, err, "")
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

// GET /api/blog/:slug
func (a *App) GetBlogPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := a.Catalog.BlogPostBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, err, "Post not found")
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// GET /api/faq
func (a *App) GetFAQs() gin.HandlerFunc {
	return func(c *gin.Context) {
		faqs, err := a.Catalog.FAQs(c.Request.Context())
		if err != nil {
			respondError(c, err, "")
			return
		}
		c.JSON(http.StatusOK, faqs)
	}
}
