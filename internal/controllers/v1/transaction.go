package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paisaflow/backend/internal/categorize"
	"github.com/paisaflow/backend/internal/httperror"
	"github.com/paisaflow/backend/internal/models"
	"github.com/paisaflow/backend/internal/types"
	"github.com/shopspring/decimal"
)

// TransactionQuery are the query parameters for listing transactions.
type TransactionQuery struct {
	Month string `form:"month" example:"2026-08"` // Limit to one month in the target timezone
}

// TransactionsResponse is the response for a transaction list.
type TransactionsResponse struct {
	Data []models.Transaction `json:"data"`
}

// TransactionResponse is the response for a single transaction.
type TransactionResponse struct {
	Data models.Transaction `json:"data"`
}

// TransactionEditable are the fields of a manual transaction entry.
type TransactionEditable struct {
	Date        time.Time       `json:"date" binding:"required" example:"2026-08-15T00:00:00+05:30"`
	Description string          `json:"description" example:"Veggies from the market"`
	Category    string          `json:"category" example:"Groceries"` // Empty lets the categorizer decide
	Amount      decimal.Decimal `json:"amount" example:"450"`
}

// loadTransactions reads all transactions, optionally filtered to one
// month in the target timezone. A false return value means an error
// response was already written.
func (co *Controller) loadTransactions(c *gin.Context) ([]models.Transaction, bool) {
	var query TransactionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return nil, false
	}

	var transactions []models.Transaction
	if err := models.DB.Order("date ASC").Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(err))
		return nil, false
	}

	if query.Month == "" {
		return transactions, true
	}

	loc, err := co.loader.Config().Location()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(err))
		return nil, false
	}

	month, err := types.ParseMonth(query.Month, loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(errMonthInvalid))
		return nil, false
	}

	filtered := make([]models.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if month.Contains(transaction.Date) {
			filtered = append(filtered, transaction)
		}
	}

	return filtered, true
}

// GetTransactions returns all transactions, sorted ascending by date.
func (co *Controller) GetTransactions(c *gin.Context) {
	transactions, ok := co.loadTransactions(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, TransactionsResponse{Data: transactions})
}

// CreateTransaction stores a manually entered transaction. Manual
// entries are always expenses in the base currency; rows with an
// empty category are categorized by their description.
func (co *Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	if editable.Amount.IsNegative() {
		c.JSON(http.StatusBadRequest, httperror.New(errAmountNegative))
		return
	}

	cfg := co.loader.Config()

	transaction := models.Transaction{
		Date:        editable.Date,
		Description: editable.Description,
		Amount:      editable.Amount,
		Expense:     editable.Amount,
		Income:      decimal.Zero,
		Currency:    cfg.BaseCurrency,
		Category:    editable.Category,
	}

	if transaction.Category == "" {
		transaction.Category = categorize.New(cfg.Categories).Category(transaction)
	}

	if err := models.DB.Create(&transaction).Error; err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: transaction})
}
