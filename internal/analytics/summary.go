package analytics

import (
	"strings"

	"github.com/paisaflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// topCategories is the number of categories listed in a summary.
const topCategories = 5

// Summarize renders a text block with the total spend and the top
// categories for the given transactions. An empty table yields an
// explicit no-data message instead of a zero total.
func Summarize(transactions []models.Transaction, title string) string {
	if len(transactions) == 0 {
		return title + ": No transactions in the selected period."
	}

	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.Amount)
	}

	type categorySum struct {
		category string
		sum      decimal.Decimal
	}

	sums := make([]categorySum, 0)
	for category, sum := range sumByCategory(transactions) {
		sums = append(sums, categorySum{category, sum})
	}

	slices.SortStableFunc(sums, func(a, b categorySum) int {
		if cmp := b.sum.Cmp(a.sum); cmp != 0 {
			return cmp
		}

		return strings.Compare(a.category, b.category)
	})

	lines := []string{title + ": Total spend " + FormatAmount(total) + "."}

	bullets := 0
	for _, entry := range sums {
		if bullets == topCategories {
			break
		}
		if !entry.sum.IsPositive() {
			continue
		}

		lines = append(lines, "- "+entry.category+": "+FormatAmount(entry.sum))
		bullets++
	}

	if bullets == 0 {
		lines = append(lines, "- No expenses detected (only income or zero amounts).")
	}

	return strings.Join(lines, "\n")
}
