// Package importer turns heterogeneous bank CSV exports into canonical
// transactions: it detects the schema variant from the header names,
// reconciles debit/credit/amount representations, converts currencies
// to the base currency and parses dates into timezone-aware instants.
package importer

import (
	"github.com/paisaflow/backend/internal/models"
)

// Table is a raw CSV table: a header and untyped string cells. It only
// exists during ingestion.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Column returns all cells of the named column, one per row. An
// unknown name yields empty cells.
func (t *Table) Column(name string) []string {
	idx := t.index(name)

	values := make([]string, len(t.Rows))
	if idx < 0 {
		return values
	}

	for i, row := range t.Rows {
		values[i] = row[idx]
	}

	return values
}

// Cell returns the cell of the named column in the given row.
func (t *Table) Cell(row int, name string) string {
	idx := t.index(name)
	if idx < 0 {
		return ""
	}

	return t.Rows[row][idx]
}

func (t *Table) index(name string) int {
	for i, column := range t.Columns {
		if column == name {
			return i
		}
	}

	return -1
}

// roles holds the resolved column name per column role. An empty
// string means the role could not be resolved.
type roles struct {
	date        string
	description string
	amount      string
	debit       string
	credit      string
	currency    string
	transType   string
}

// consumed reports whether a column is taken up by one of the resolved
// roles. Columns that are not consumed are preserved verbatim on the
// canonical transaction.
func (r roles) consumed(column string) bool {
	switch column {
	case r.date, r.description, r.amount, r.debit, r.credit, r.currency, r.transType:
		return column != ""
	}

	return false
}

// Result is the output of one ingestion run.
type Result struct {
	// Transactions holds the canonical transactions, sorted ascending
	// by date.
	Transactions []models.Transaction

	// Dropped is the number of input rows excluded because their date
	// could not be parsed.
	Dropped int
}
