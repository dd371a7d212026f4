package v1

import "errors"

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)

// Transaction errors
var (
	errAmountNegative = errors.New("the amount of a transaction must not be negative")
	errMonthInvalid   = errors.New("the month query parameter must be in the YYYY-MM format")
)

// Budget errors
var (
	errBudgetNegative = errors.New("budget limits must not be negative")
)
