// Package analytics derives budget comparisons and summaries from
// canonical transactions. All functions are pure aggregations, the
// table is never modified.
package analytics

import (
	"strings"

	"github.com/paisaflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Overspend reports one category whose actual spend exceeds its budget.
type Overspend struct {
	Category    string          `json:"category"`
	Actual      decimal.Decimal `json:"actual"`
	Budget      decimal.Decimal `json:"budget"`
	PercentOver float64         `json:"percentOver"`
}

// sumByCategory sums the unified amount per category.
func sumByCategory(transactions []models.Transaction) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}

	return sums
}

// OverspendReport returns every category whose summed spend strictly
// exceeds its budgeted limit, sorted descending by the percentage over
// budget. Categories without a budget, or with a zero budget, never
// appear in the report.
func OverspendReport(transactions []models.Transaction, budgets map[string]decimal.Decimal) []Overspend {
	report := make([]Overspend, 0)
	if len(transactions) == 0 {
		return report
	}

	for category, actual := range sumByCategory(transactions) {
		budget, ok := budgets[category]
		if !ok || !budget.IsPositive() {
			continue
		}

		if !actual.GreaterThan(budget) {
			continue
		}

		percent, _ := actual.Sub(budget).Div(budget).Mul(decimal.NewFromInt(100)).Float64()
		report = append(report, Overspend{
			Category:    category,
			Actual:      actual,
			Budget:      budget,
			PercentOver: percent,
		})
	}

	slices.SortStableFunc(report, func(a, b Overspend) int {
		switch {
		case a.PercentOver > b.PercentOver:
			return -1
		case a.PercentOver < b.PercentOver:
			return 1
		}

		// Deterministic order for equal percentages
		return strings.Compare(a.Category, b.Category)
	})

	return report
}

// AdviceText renders the overspend report as a short advisory text.
func AdviceText(transactions []models.Transaction, budgets map[string]decimal.Decimal) string {
	report := OverspendReport(transactions, budgets)
	if len(report) == 0 {
		return "Good job! You are within budget for all categories in this period."
	}

	lines := []string{"Overspending detected:"}
	for _, entry := range report {
		lines = append(lines, "- "+entry.Category+": spent "+FormatAmount(entry.Actual)+
			" vs budget "+FormatAmount(entry.Budget)+
			" ("+FormatPercent(entry.PercentOver)+" over)")
	}

	return strings.Join(lines, "\n")
}
