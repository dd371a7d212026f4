package importer

import (
	"strings"

	"github.com/paisaflow/backend/internal/config"
	"github.com/shopspring/decimal"
)

// CellAmount is the result of parsing a single raw amount cell.
// Valid distinguishes "parsed as zero" from "could not be parsed".
// Currency is a hint detected from symbols or currency tokens in the
// cell, empty when the cell carries no hint.
type CellAmount struct {
	Value    decimal.Decimal
	Valid    bool
	Currency string
}

// ParseAmountCell extracts a numeric value and a currency hint from a
// free-form amount string like "₹1,234.50", "$12" or "INR 100". A
// cell that cannot be parsed returns Valid == false,
// the currency hint is still reported if one was found.
func ParseAmountCell(s string) CellAmount {
	s = strings.TrimSpace(s)
	if s == "" {
		return CellAmount{}
	}

	var currency string
	upper := strings.ToUpper(s)
	if strings.Contains(s, "₹") || strings.Contains(upper, "INR") {
		currency = "INR"
	} else if strings.Contains(s, "$") || strings.Contains(upper, "USD") {
		currency = "USD"
	}

	// Keep digits, "-" and "."
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)

	switch cleaned {
	case "", "-", ".", "-.", ".-":
		return CellAmount{Currency: currency}
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return CellAmount{Currency: currency}
	}

	return CellAmount{Value: value, Valid: true, Currency: currency}
}

// amounts holds the per-row outcome of the amount reconciliation.
type amounts struct {
	expense  []decimal.Decimal
	income   []decimal.Decimal
	currency []string
}

// reconcileAmounts produces expense, income and currency values for
// every row of the table. Representations are reconciled in priority
// order:
//
//  1. separate debit/credit columns,
//  2. a single amount column with a transaction-type column,
//  3. a single amount column with a sign heuristic (non-negative means
//     expense).
//
// Amounts detected as USD are converted to the base currency with the
// fixed fallback rate, unless USD is the base; after that, every row
// carries the base currency.
func reconcileAmounts(t *Table, r roles, cfg *config.Config) amounts {
	n := len(t.Rows)
	out := amounts{
		expense:  make([]decimal.Decimal, n),
		income:   make([]decimal.Decimal, n),
		currency: make([]string, n),
	}

	// Currency hints come from the single amount column, if present.
	// The rupee sign and the INR token mark the local notation, which
	// hints the base currency, whatever it is configured to be.
	hints := make([]string, n)
	if r.amount != "" {
		for i, cell := range t.Column(r.amount) {
			hints[i] = ParseAmountCell(cell).Currency
			if hints[i] == "INR" {
				hints[i] = cfg.BaseCurrency
			}
		}
	}

	if r.debit != "" || r.credit != "" {
		for i := range t.Rows {
			if r.debit != "" {
				if cell := ParseAmountCell(t.Cell(i, r.debit)); cell.Valid {
					out.expense[i] = cell.Value
				}
			}
			if r.credit != "" {
				if cell := ParseAmountCell(t.Cell(i, r.credit)); cell.Valid {
					out.income[i] = cell.Value
				}
			}
		}
	} else if r.amount != "" {
		for i, raw := range t.Column(r.amount) {
			cell := ParseAmountCell(raw)
			if !cell.Valid {
				continue
			}

			if r.transType != "" {
				transType := strings.ToLower(t.Cell(i, r.transType))
				if strings.Contains(transType, "cr") || strings.Contains(transType, "credit") {
					out.income[i] = cell.Value.Abs()
				} else {
					out.expense[i] = cell.Value.Abs()
				}
				continue
			}

			// No type evidence: non-negative values are expenses
			if cell.Value.IsNegative() {
				out.income[i] = cell.Value.Abs()
			} else {
				out.expense[i] = cell.Value
			}
		}
	}

	for i := range t.Rows {
		out.currency[i] = resolveCurrency(t, r, i, hints[i], cfg.BaseCurrency)
	}

	rate := decimal.NewFromFloat(cfg.USDToBaseRate)
	for i := range t.Rows {
		if out.currency[i] == "USD" && cfg.BaseCurrency != "USD" {
			out.expense[i] = out.expense[i].Mul(rate)
			out.income[i] = out.income[i].Mul(rate)
		}

		// The pipeline never reports a non-base currency
		out.currency[i] = cfg.BaseCurrency
	}

	return out
}

// resolveCurrency determines the currency of one row: an explicit
// currency column wins, then the per-cell hint, then the base currency.
func resolveCurrency(t *Table, r roles, row int, hint, base string) string {
	if r.currency != "" {
		currency := strings.ToUpper(strings.TrimSpace(t.Cell(row, r.currency)))
		currency = strings.ReplaceAll(currency, "₹", "INR")
		currency = strings.ReplaceAll(currency, "$", "USD")
		if currency != "" {
			return currency
		}
	}

	if hint != "" {
		return hint
	}

	return base
}
