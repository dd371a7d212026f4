package analytics_test

import (
	"strings"
	"testing"

	"github.com/paisaflow/backend/internal/analytics"
	"github.com/paisaflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	summary := analytics.Summarize([]models.Transaction{}, "June")
	assert.Equal(t, "June: No transactions in the selected period.", summary)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	transactions := []models.Transaction{
		spend("Food", 4500),
		spend("Food", 1500),
		spend("Transport", 2000),
		spend("Shopping", 3000),
		spend("Housing", 10000),
		spend("Utilities", 1000),
		spend("Entertainment", 500),
		spend("Health", 250),
	}

	summary := analytics.Summarize(transactions, "June")
	lines := strings.Split(summary, "\n")

	assert.Equal(t, "June: Total spend ₹22,750.", lines[0])

	// Top 5 categories by spend, descending
	require.Len(t, lines, 6)
	assert.Equal(t, "- Housing: ₹10,000", lines[1])
	assert.Equal(t, "- Food: ₹6,000", lines[2])
	assert.Equal(t, "- Shopping: ₹3,000", lines[3])
	assert.Equal(t, "- Transport: ₹2,000", lines[4])
	assert.Equal(t, "- Utilities: ₹1,000", lines[5])
}

func TestSummarizeOnlyIncome(t *testing.T) {
	t.Parallel()

	// Income rows carry a zero amount, so there is nothing to list
	transactions := []models.Transaction{
		{Category: "Income", Amount: decimal.Zero, Income: decimal.NewFromInt(50000)},
	}

	summary := analytics.Summarize(transactions, "June")
	lines := strings.Split(summary, "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "June: Total spend ₹0.", lines[0])
	assert.Equal(t, "- No expenses detected (only income or zero amounts).", lines[1])
}
