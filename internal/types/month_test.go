package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/paisaflow/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthUnmarshalJSON(t *testing.T) {
	var target struct {
		Month types.Month
	}
	jsonString := []byte(`{ "Month": "2024-05" }`)

	err := json.Unmarshal(jsonString, &target)

	assert.Nil(t, err)
	assert.True(t, target.Month.Equal(types.NewMonth(2024, 5, time.UTC)))
}

func TestMonthMarshalJSON(t *testing.T) {
	month := types.NewMonth(2026, 8, time.UTC)

	data, err := json.Marshal(month)
	assert.Nil(t, err)
	assert.Equal(t, `"2026-08"`, string(data))
}

func TestMonthContains(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.Nil(t, err)

	month := types.NewMonth(2026, 8, loc)

	tests := []struct {
		name     string
		instant  time.Time
		contains bool
	}{
		{"middle of the month", time.Date(2026, 8, 15, 12, 0, 0, 0, loc), true},
		{"first instant", time.Date(2026, 8, 1, 0, 0, 0, 0, loc), true},
		{"first instant of next month", time.Date(2026, 9, 1, 0, 0, 0, 0, loc), false},
		{"previous month", time.Date(2026, 7, 31, 23, 59, 59, 0, loc), false},
		{"same instant in UTC", time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC), true},
		{"UTC instant before the local month start", time.Date(2026, 7, 31, 18, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.contains, month.Contains(tt.instant))
		})
	}
}

func TestParseMonth(t *testing.T) {
	month, err := types.ParseMonth("2025-12", time.UTC)
	assert.Nil(t, err)
	assert.Equal(t, "2025-12", month.String())

	_, err = types.ParseMonth("December 2025", time.UTC)
	assert.NotNil(t, err)
}
