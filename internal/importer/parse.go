package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/paisaflow/backend/internal/config"
	"github.com/paisaflow/backend/internal/models"
	"golang.org/x/exp/slices"
)

var (
	// ErrNoDateColumn is returned when none of the date candidates
	// matches a column of the input. A date column is mandatory, all
	// other roles degrade gracefully.
	ErrNoDateColumn = errors.New("could not detect a date column, rename one column to \"Date\"")

	// ErrEmptyFile is returned for inputs without a header row.
	ErrEmptyFile = errors.New("the file does not contain any data")
)

// Parse reads a CSV export with a header row and returns the canonical
// transactions, sorted ascending by date. Rows whose date cannot be
// parsed are dropped and counted in the result, all other parse
// failures degrade per cell. The only fatal conditions are a missing
// date column and malformed CSV data.
//
// Parse is a pure transformation: it reads the input exactly once and
// keeps no state between invocations.
func Parse(f io.Reader, cfg *config.Config) (Result, error) {
	loc, err := cfg.Location()
	if err != nil {
		return Result{}, err
	}

	table, err := readTable(f)
	if err != nil {
		return Result{}, err
	}

	r := resolveRoles(table.Columns, cfg.Columns)
	if r.date == "" {
		return Result{}, ErrNoDateColumn
	}

	dates := parseDateColumn(table.Column(r.date), loc)
	am := reconcileAmounts(&table, r, cfg)

	transactions := make([]models.Transaction, 0, len(table.Rows))
	dropped := 0

	for i := range table.Rows {
		if dates[i].IsZero() {
			dropped++
			continue
		}

		// No description-like column resolves to an empty description
		description := ""
		if r.description != "" {
			description = table.Cell(i, r.description)
		}

		transactions = append(transactions, models.Transaction{
			Date:        dates[i],
			Description: description,
			Amount:      am.expense[i],
			Expense:     am.expense[i],
			Income:      am.income[i],
			Currency:    am.currency[i],
			Source:      sourceFields(&table, r, i),
		})
	}

	slices.SortStableFunc(transactions, func(a, b models.Transaction) int {
		return a.Date.Compare(b.Date)
	})

	return Result{Transactions: transactions, Dropped: dropped}, nil
}

// resolveRoles locates the column for every role. Only the date role
// is mandatory, which Parse enforces.
func resolveRoles(columns []string, candidates config.Columns) roles {
	var r roles
	r.date, _ = ResolveColumn(columns, candidates.Date)
	r.description, _ = ResolveColumn(columns, candidates.Description)
	r.amount, _ = ResolveColumn(columns, candidates.Amount)
	r.debit, _ = ResolveColumn(columns, candidates.Debit)
	r.credit, _ = ResolveColumn(columns, candidates.Credit)
	r.currency, _ = ResolveColumn(columns, candidates.Currency)
	r.transType, _ = ResolveColumn(columns, candidates.Type)
	return r
}

// sourceFields preserves the cells of all columns the pipeline did not
// consume.
func sourceFields(t *Table, r roles, row int) models.SourceFields {
	var fields models.SourceFields
	for _, column := range t.Columns {
		if r.consumed(column) {
			continue
		}

		if fields == nil {
			fields = make(models.SourceFields)
		}
		fields[column] = t.Cell(row, column)
	}

	return fields
}

// readTable reads the complete CSV input into a raw table.
func readTable(f io.Reader) (Table, error) {
	reader := csv.NewReader(f)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return Table{}, ErrEmptyFile
	}
	if err != nil {
		return Table{}, fmt.Errorf("could not read the CSV header: %w", err)
	}

	columns := make([]string, len(header))
	copy(columns, header)

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		row := make([]string, len(record))
		copy(row, record)
		rows = append(rows, row)
	}

	return Table{Columns: columns, Rows: rows}, nil
}

// csvReadError returns an error that includes the line of the input
// the error occurred in.
func csvReadError(r *csv.Reader, err error) error {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(1)

	return fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
