// Package calendar holds the perpetual calendar of hallowed objects:
// one entry per valid (month, day) pair plus the custom weekday names.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoEntry is returned when a date has no calendar entry.
	ErrNoEntry = errors.New("no calendar entry for date")

	// ErrInvalidWeekday is returned for a weekday index outside 0..6.
	ErrInvalidWeekday = errors.New("invalid weekday index")
)

// Gender is the grammatical agreement category of an entry's noun.
type Gender int

const (
	Masculine Gender = iota
	Feminine
	Neutral
)

func (g Gender) String() string {
	switch g {
	case Masculine:
		return "masculine"
	case Feminine:
		return "feminine"
	case Neutral:
		return "neutral"
	default:
		return fmt.Sprintf("Gender(%d)", int(g))
	}
}

// Entry is one day's hallowed object.
type Entry struct {
	Singular string
	Plural   string
	Gender   Gender
}

// Date is a (month, day) pair, year-independent.
type Date struct {
	Month int
	Day   int
}

// Table maps dates to entries. It is immutable after construction.
type Table struct {
	entries map[Date]Entry
}

// NewTable builds a table from the given entries.
func NewTable(entries map[Date]Entry) Table {
	return Table{entries: entries}
}

// DefaultTable returns the full 366-entry calendar.
func DefaultTable() Table {
	return NewTable(defaultEntries)
}

// Lookup returns the entry for the given month and day.
func (t Table) Lookup(month, day int) (Entry, error) {
	entry, ok := t.entries[Date{Month: month, Day: day}]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %d/%d", ErrNoEntry, day, month)
	}
	return entry, nil
}

// Len returns the number of entries in the table.
func (t Table) Len() int {
	return len(t.entries)
}

// DayNames is the ordered list of weekday names, index 0 = Monday.
type DayNames [7]string

// DefaultDayNames are the custom weekday names of the calendar.
var DefaultDayNames = DayNames{"Lourdi", "Pardi", "Morquidi", "Jourdi", "Dendrevi", "Sordi", "Mitanche"}

// Name returns the day name for a Monday-based weekday index.
func (n DayNames) Name(weekday int) (string, error) {
	if weekday < 0 || weekday >= len(n) {
		return "", fmt.Errorf("%w: %d", ErrInvalidWeekday, weekday)
	}
	return n[weekday], nil
}

// WeekdayIndex converts a time.Weekday (Sunday-based) to the
// Monday-based index used by DayNames.
func WeekdayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}
