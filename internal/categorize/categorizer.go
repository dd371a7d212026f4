// Package categorize assigns spending categories to canonical
// transactions using an ordered keyword rule table.
package categorize

import (
	"strings"

	"github.com/paisaflow/backend/internal/config"
	"github.com/paisaflow/backend/internal/models"
	"github.com/ryanuber/go-glob"
)

const (
	// Fallback is assigned when no rule matches.
	Fallback = "Others"

	// Income is forced for rows whose income exceeds their expense,
	// regardless of any keyword match.
	Income = "Income"
)

// Categorizer classifies transactions by their description. It is a
// pure function of its rule table, so independent instances with
// different rules can coexist in one process.
type Categorizer struct {
	rules []config.CategoryRule
}

// New creates a Categorizer from an ordered rule table. Rule order is
// a priority order: the first category with a matching keyword wins,
// not the one with the most matches.
func New(rules []config.CategoryRule) *Categorizer {
	return &Categorizer{rules: rules}
}

// Category returns the category for a single transaction.
func (c *Categorizer) Category(t models.Transaction) string {
	// Rows that are clearly income by value override any keyword match
	if t.Income.GreaterThan(t.Expense) {
		return Income
	}

	description := strings.ToLower(t.Description)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if glob.Glob(pattern(keyword), description) {
				return rule.Name
			}
		}
	}

	return Fallback
}

// Apply sets the category on every transaction of the table.
func (c *Categorizer) Apply(transactions []models.Transaction) {
	for i := range transactions {
		transactions[i].Category = c.Category(transactions[i])
	}
}

// pattern turns a keyword into a glob pattern. Plain keywords match as
// substrings, keywords containing glob metacharacters are used as-is.
func pattern(keyword string) string {
	keyword = strings.ToLower(keyword)
	if strings.Contains(keyword, "*") {
		return keyword
	}

	return "*" + keyword + "*"
}
