// Package v1 implements the v1 API of the paisaflow backend.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/paisaflow/backend/internal/config"
)

// Controller holds the dependencies of the v1 handlers. Handlers read
// the configuration through the loader on every request, so a reloaded
// configuration applies without a restart.
type Controller struct {
	loader    *config.Loader
	uploadDir string
}

// NewController creates a Controller.
func NewController(loader *config.Loader, uploadDir string) *Controller {
	return &Controller{
		loader:    loader,
		uploadDir: uploadDir,
	}
}

// RegisterRoutes registers the v1 routes with the RouterGroup that is
// passed.
func (co *Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/imports", co.CreateImport)

	{
		r.GET("/transactions", co.GetTransactions)
		r.POST("/transactions", co.CreateTransaction)
	}

	{
		r.GET("/budgets", co.GetBudgets)
		r.PUT("/budgets", co.UpdateBudgets)
	}

	{
		r.GET("/reports/overspend", co.GetOverspendReport)
		r.GET("/reports/summary", co.GetSummary)
		r.GET("/reports/advice", co.GetAdvice)
	}
}
