package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princinho/arcadiabackend/middleware"
)

// NewRouter builds the engine with middleware and all routes registered.
func NewRouter(app *App) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(app.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(app.Config.AllowedOrigins))

	app.Routes(r)
	return r
}

func (a *App) Routes(r gin.IRouter) {
	r.GET("/", a.Root())
	r.GET("/test", a.TestDatabase())

	api := r.Group("/api")
	{
		api.GET("/products", a.GetProducts())
		api.GET("/products/:slug", a.GetProduct())

		api.GET("/reviews", a.GetReviews())
		api.POST("/reviews", a.CreateReview())

		api.GET("/blog", a.GetBlogPosts())
		api.GET("/blog/:slug", a.GetBlogPost())

		api.GET("/faq", a.GetFAQs())

		api.POST("/price", a.QuotePrice())
	}
}

// GET /
func (a *App) Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"brand": a.Config.BrandName, "status": "ok"})
	}
}
