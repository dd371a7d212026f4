package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/paisaflow/backend/internal/controllers/v1"
	"github.com/paisaflow/backend/internal/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOverspendReport(t *testing.T) {
	recorder := test.Request(t, http.MethodGet, "/v1/reports/overspend?month=2026-03", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var response v1.OverspendResponse
	test.DecodeResponse(t, &recorder, &response)

	// Food is over its budget, Transport is within, Income has none
	require.Len(t, response.Data, 1)
	assert.Equal(t, "Food", response.Data[0].Category)
	assert.True(t, response.Data[0].Actual.Equal(decimal.NewFromInt(7000)))
	assert.True(t, response.Data[0].Budget.Equal(decimal.NewFromInt(6000)))
	assert.InDelta(t, 16.67, response.Data[0].PercentOver, 0.01)
}

func TestGetOverspendReportEmptyMonth(t *testing.T) {
	recorder := test.Request(t, http.MethodGet, "/v1/reports/overspend?month=2025-12", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var response v1.OverspendResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.Len(t, response.Data, 0)
}

func TestGetSummary(t *testing.T) {
	recorder := test.Request(t, http.MethodGet, "/v1/reports/summary?month=2026-03", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var response v1.TextReportResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.Equal(t, "2026-03: Total spend ₹8,000.\n- Food: ₹7,000\n- Transport: ₹1,000", response.Data)
}

func TestGetSummaryNoTransactions(t *testing.T) {
	recorder := test.Request(t, http.MethodGet, "/v1/reports/summary?month=2025-12", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var response v1.TextReportResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.Equal(t, "2025-12: No transactions in the selected period.", response.Data)
}

func TestGetAdvice(t *testing.T) {
	recorder := test.Request(t, http.MethodGet, "/v1/reports/advice?month=2026-03", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var response v1.TextReportResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.Equal(t, "Overspending detected:\n- Food: spent ₹7,000 vs budget ₹6,000 (17% over)", response.Data)
}

func TestGetAdviceWithinBudget(t *testing.T) {
	recorder := test.Request(t, http.MethodGet, "/v1/reports/advice?month=2025-12", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var response v1.TextReportResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.Equal(t, "Good job! You are within budget for all categories in this period.", response.Data)
}
