package importer_test

import (
	"testing"

	"github.com/paisaflow/backend/internal/importer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmountCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cell     string
		value    string
		valid    bool
		currency string
	}{
		{"clean number", "100.50", "100.50", true, ""},
		{"rupee symbol with thousands separator", "₹1,234", "1234", true, "INR"},
		{"INR token", "INR 250.75", "250.75", true, "INR"},
		{"lower-case inr token", "inr 99", "99", true, "INR"},
		{"dollar symbol", "$12.30", "12.30", true, "USD"},
		{"USD token", "12 USD", "12", true, "USD"},
		{"negative amount", "-200", "-200", true, ""},
		{"blank", "", "", false, ""},
		{"whitespace only", "   ", "", false, ""},
		{"dash only", "-", "", false, ""},
		{"dot only", ".", "", false, ""},
		{"dash dot", "-.", "", false, ""},
		{"dot dash", ".-", "", false, ""},
		{"text only", "n/a", "", false, ""},
		{"currency hint survives parse failure", "₹ --", "", false, "INR"},
		{"multiple dots fail", "1.2.3", "", false, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cell := importer.ParseAmountCell(tt.cell)
			assert.Equal(t, tt.valid, cell.Valid)
			assert.Equal(t, tt.currency, cell.Currency)

			if tt.valid {
				expected, err := decimal.NewFromString(tt.value)
				assert.Nil(t, err)
				assert.True(t, cell.Value.Equal(expected), "parsed %s, expected %s", cell.Value, expected)
			}
		})
	}
}
