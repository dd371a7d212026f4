// Package config holds the configuration data the pipeline and the
// categorizer are built from: process settings, column candidate lists,
// category keyword rules and default budgets.
package config

import (
	"fmt"
	"time"
)

// Config is the top-level YAML structure.
//
// Every section is optional in the file; missing sections fall back to
// the built-in defaults, see defaults.go.
type Config struct {
	// Timezone is the IANA identifier of the target timezone all
	// transaction dates are localized to.
	Timezone string `yaml:"timezone"`

	// BaseCurrency is the ISO 4217 code all amounts are normalized to.
	BaseCurrency string `yaml:"base_currency"`

	// USDToBaseRate is the fixed fallback conversion rate applied to
	// amounts detected as USD. There is no live FX lookup.
	USDToBaseRate float64 `yaml:"usd_to_base_rate"`

	// Columns lists the acceptable header names per column role, in
	// priority order.
	Columns Columns `yaml:"columns"`

	// Categories is the ordered keyword rule table. Order is
	// significant: the first matching category wins.
	Categories []CategoryRule `yaml:"categories"`

	// Budgets maps category names to their default monthly limit in
	// the base currency.
	Budgets map[string]float64 `yaml:"budgets"`
}

// Columns holds the candidate header names for each column role.
type Columns struct {
	Date        []string `yaml:"date"`
	Description []string `yaml:"description"`
	Amount      []string `yaml:"amount"`
	Debit       []string `yaml:"debit"`
	Credit      []string `yaml:"credit"`
	Currency    []string `yaml:"currency"`
	Type        []string `yaml:"type"`
}

// CategoryRule maps a category name to the keywords that select it.
// A keyword matches when it occurs anywhere in the lower-cased
// transaction description. Keywords may contain explicit glob
// metacharacters, plain keywords are matched as substrings.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}

	return loc, nil
}

// validate checks the parts of the configuration that would otherwise
// fail deep inside the pipeline.
func (c *Config) validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}

	if c.BaseCurrency == "" {
		return fmt.Errorf("base_currency must not be empty")
	}

	if c.USDToBaseRate <= 0 {
		return fmt.Errorf("usd_to_base_rate must be positive, is %v", c.USDToBaseRate)
	}

	if len(c.Columns.Date) == 0 {
		return fmt.Errorf("at least one date column candidate is required")
	}

	return nil
}
