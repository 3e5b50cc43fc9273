package util

import (
	"strings"
	"time"
)

// Placeholders are replaced longest first so "YYYY" is never read as two "YY".
var dateTplReplacements = []struct{ from, to string }{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"DD", "02"},
	{"ddd", "Mon"},
	{"hh", "15"},
	{"mm", "04"},
	{"ss", "05"},
}

// FormatDateTpl formats t using a template with placeholders.
//
// Supported placeholders:
// - YYYY: 4-digit year
// - YY: 2-digit year
// - MMM: short month name (Jan)
// - MM: 2-digit month (01-12)
// - DD: 2-digit day (01-31)
// - ddd: short weekday name (Mon)
// - hh: 2-digit hour (00-23)
// - mm: 2-digit minute (00-59)
// - ss: 2-digit second (00-59)
//
// Returns an empty string for the zero time.
//
// Example:
//
//	t := time.UnixMilli(1699603200000).UTC()
//	FormatDateTpl(t, "YYYY.MM.DD")      // "2023.11.10"
//	FormatDateTpl(t, "ddd MMM DD YYYY") // "Fri Nov 10 2023"
func FormatDateTpl(t time.Time, tpl string) string {
	if t.IsZero() {
		return ""
	}

	goTpl := tpl
	for _, r := range dateTplReplacements {
		goTpl = strings.ReplaceAll(goTpl, r.from, r.to)
	}

	return t.Format(goTpl)
}
