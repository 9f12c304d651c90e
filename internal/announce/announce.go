// Package announce renders the daily announcement text.
package announce

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/lolabot/saint-objet/internal/calendar"
)

// Build renders the two-line announcement for the given date. It is a
// pure function of its inputs: same date, table and names always yield
// the same string.
func Build(now time.Time, table calendar.Table, names calendar.DayNames) (string, error) {
	dayName, err := names.Name(calendar.WeekdayIndex(now.Weekday()))
	if err != nil {
		return "", fmt.Errorf("failed to resolve weekday name: %w", err)
	}

	entry, err := table.Lookup(int(now.Month()), now.Day())
	if err != nil {
		return "", fmt.Errorf("failed to resolve calendar entry: %w", err)
	}

	prefix, collective, err := agreement(entry.Gender)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Chalut ! Aujourd'hui, %s %d, c'est la %s-%s.\nBonne fête à %s les %s 🎆",
		dayName,
		now.Day(),
		prefix,
		capitalize(entry.Singular),
		collective,
		capitalize(entry.Plural),
	), nil
}

// agreement selects the hallow prefix and collective pronoun for a
// gender. Neutral takes the masculine forms: French has no distinct
// neutral agreement.
func agreement(g calendar.Gender) (prefix, collective string, err error) {
	switch g {
	case calendar.Feminine:
		return "Sainte", "toutes", nil
	case calendar.Masculine, calendar.Neutral:
		return "Saint", "tous", nil
	default:
		return "", "", fmt.Errorf("unknown gender %v", g)
	}
}

// capitalize uppercases the first rune and leaves the rest unchanged.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
