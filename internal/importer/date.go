package importer

import (
	"strings"
	"time"
)

// Layouts that carry their own timezone. Values parsed with these are
// converted to the target timezone, not re-localized.
var zonedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05 -0700",
}

// Naive layouts with the day before the month. Numeric fields are
// unpadded so that both "5/6/2024" and "05/06/2024" parse.
var dayFirstLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2/1/2006 15:04",
	"2/1/2006 15:04:05",
	"2006-1-2",
	"2006-1-2 15:04:05",
	"2 Jan 2006",
	"2-Jan-2006",
	"2 January 2006",
}

// Naive layouts with the month before the day, used as a fallback when
// an entire column fails to parse day-first.
var monthFirstLayouts = []string{
	"1/2/2006",
	"1-2-2006",
	"1.2.2006",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"2006-1-2",
	"2006-1-2 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
}

// parseDateColumn parses a raw date column into timezone-aware
// instants, one per row. Unparseable cells yield the zero time instead
// of an error, callers drop those rows.
//
// The day-before-month convention is tried first. Only when every
// value fails under it is the whole column retried month-first, so a
// single column is never parsed under mixed conventions.
func parseDateColumn(values []string, loc *time.Location) []time.Time {
	parsed := parseDateCells(values, dayFirstLayouts, loc)

	for _, t := range parsed {
		if !t.IsZero() {
			return parsed
		}
	}

	return parseDateCells(values, monthFirstLayouts, loc)
}

func parseDateCells(values []string, layouts []string, loc *time.Location) []time.Time {
	parsed := make([]time.Time, len(values))
	for i, value := range values {
		parsed[i], _ = parseDateCell(value, layouts, loc)
	}

	return parsed
}

// parseDateCell parses one date string. Naive results are localized to
// the target timezone. Local times that do not exist or occur twice
// because of a daylight saving transition are rejected rather than
// resolved to a guess.
func parseDateCell(s string, layouts []string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc), true
		}
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}

		local := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)

		// time.Date normalizes nonexistent local times by shifting the
		// wall clock. A shifted result means the input fell into a DST
		// gap, it is treated as unparseable.
		if local.Day() != t.Day() || local.Hour() != t.Hour() || local.Minute() != t.Minute() {
			return time.Time{}, false
		}

		// A wall clock that repeats when clocks are set back maps to
		// two instants. Such readings are ambiguous and treated as
		// unparseable too.
		for _, delta := range []time.Duration{-time.Hour, time.Hour} {
			alt := local.Add(delta)
			if alt.Day() == local.Day() && alt.Hour() == local.Hour() && alt.Minute() == local.Minute() {
				return time.Time{}, false
			}
		}

		return local, true
	}

	return time.Time{}, false
}
