package importer

import (
	"strings"

	"golang.org/x/exp/slices"
)

// ResolveColumn maps the columns of a raw table to a column role. The
// candidates are the acceptable header names for the role, in priority
// order: the first candidate present in columns wins. When no
// candidate matches exactly, the scan is repeated case-insensitively,
// candidate order still decides priority.
//
// The second return value is false when no candidate matches. Absence
// is not an error, callers decide how the role degrades.
func ResolveColumn(columns []string, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if slices.Contains(columns, candidate) {
			return candidate, true
		}
	}

	lower := make(map[string]string, len(columns))
	for _, column := range columns {
		// First occurrence wins for duplicate headers
		if _, ok := lower[strings.ToLower(column)]; !ok {
			lower[strings.ToLower(column)] = column
		}
	}

	for _, candidate := range candidates {
		if column, ok := lower[strings.ToLower(candidate)]; ok {
			return column, true
		}
	}

	return "", false
}
