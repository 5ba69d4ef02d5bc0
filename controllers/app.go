package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princinho/arcadiabackend/config"
	"github.com/princinho/arcadiabackend/database"
	"github.com/princinho/arcadiabackend/pricing"
	"github.com/rs/zerolog"
)

// App carries the dependencies shared by all handlers. It holds no entity
// state between requests.
type App struct {
	Catalog *database.Catalog
	Pricing *pricing.Calculator
	Config  *config.Config
	Log     zerolog.Logger
}

func NewApp(catalog *database.Catalog, cfg *config.Config, log zerolog.Logger) *App {
	return &App{
		Catalog: catalog,
		Pricing: pricing.NewCalculator(catalog),
		Config:  cfg,
		Log:     log,
	}
}

// respondError maps store errors onto responses: ErrNotFound gives 404
// with notFoundMsg, ErrUnavailable 503, anything else 500.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, database.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
