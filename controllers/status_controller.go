package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const maxListedCollections = 10

type DatabaseStatus struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// GET /test
// Always answers 200; failures are reported in the body.
func (a *App) TestDatabase() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, a.databaseStatus(c.Request.Context()))
	}
}

func (a *App) databaseStatus(ctx context.Context) (status DatabaseStatus) {
	status = DatabaseStatus{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	defer func() {
		if r := recover(); r != nil {
			status.Database = "❌ Error: " + truncate(fmt.Sprint(r), 50)
		}
		status.DatabaseURL = setOrNot(a.Config.StoreConfigured())
		status.DatabaseName = setOrNot(a.Config.DatabaseName != "")
	}()

	store := a.Catalog.Store()
	if store == nil {
		status.Database = "⚠️  Available but not initialized"
		return status
	}

	status.Database = "✅ Available"
	status.ConnectionStatus = "Connected"
	names, err := store.CollectionNames(ctx)
	if err != nil {
		status.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		return status
	}
	if len(names) > maxListedCollections {
		names = names[:maxListedCollections]
	}
	if names != nil {
		status.Collections = names
	}
	status.Database = "✅ Connected & Working"
	return status
}

func setOrNot(ok bool) string {
	if ok {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
