package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paisaflow/backend/internal/httperror"
	"github.com/paisaflow/backend/internal/models"
	"github.com/shopspring/decimal"
)

// BudgetsResponse is the response for the budget mapping.
type BudgetsResponse struct {
	Data map[string]decimal.Decimal `json:"data"`
}

// GetBudgets returns the monthly budget per category.
func (co *Controller) GetBudgets(c *gin.Context) {
	budgets, err := models.Budgets(models.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, BudgetsResponse{Data: budgets})
}

// UpdateBudgets replaces the complete budget mapping. Categories not
// present in the request no longer have a budget afterwards.
func (co *Controller) UpdateBudgets(c *gin.Context) {
	var budgets map[string]decimal.Decimal
	if err := c.ShouldBindJSON(&budgets); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	for _, limit := range budgets {
		if limit.IsNegative() {
			c.JSON(http.StatusBadRequest, httperror.New(errBudgetNegative))
			return
		}
	}

	if err := models.ReplaceBudgets(models.DB, budgets); err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, BudgetsResponse{Data: budgets})
}
