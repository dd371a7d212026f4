package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paisaflow/backend/internal/analytics"
	"github.com/paisaflow/backend/internal/httperror"
	"github.com/paisaflow/backend/internal/models"
)

// OverspendResponse is the response for the overspend report.
type OverspendResponse struct {
	Data []analytics.Overspend `json:"data"`
}

// TextReportResponse is the response for text reports.
type TextReportResponse struct {
	Data string `json:"data"`
}

// GetOverspendReport returns every category whose spend exceeds its
// budget, sorted descending by percentage over budget.
func (co *Controller) GetOverspendReport(c *gin.Context) {
	transactions, ok := co.loadTransactions(c)
	if !ok {
		return
	}

	budgets, err := models.Budgets(models.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, OverspendResponse{
		Data: analytics.OverspendReport(transactions, budgets),
	})
}

// GetSummary returns a text block with the total spend and the top
// categories.
func (co *Controller) GetSummary(c *gin.Context) {
	transactions, ok := co.loadTransactions(c)
	if !ok {
		return
	}

	title := "Summary"
	if month := c.Query("month"); month != "" {
		title = month
	}

	c.JSON(http.StatusOK, TextReportResponse{
		Data: analytics.Summarize(transactions, title),
	})
}

// GetAdvice returns a short advisory text derived from the overspend
// report.
func (co *Controller) GetAdvice(c *gin.Context) {
	transactions, ok := co.loadTransactions(c)
	if !ok {
		return
	}

	budgets, err := models.Budgets(models.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, TextReportResponse{
		Data: analytics.AdviceText(transactions, budgets),
	})
}
