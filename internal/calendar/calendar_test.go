package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableComplete(t *testing.T) {
	table := DefaultTable()

	// 2024 is a leap year, so iterating it visits every valid
	// (month, day) pair including February 29.
	count := 0
	for d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC); d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		entry, err := table.Lookup(int(d.Month()), d.Day())
		require.NoError(t, err, "Expected an entry for %d/%d", d.Day(), int(d.Month()))

		assert.NotEmpty(t, entry.Singular, "Empty singular for %d/%d", d.Day(), int(d.Month()))
		assert.NotEmpty(t, entry.Plural, "Empty plural for %d/%d", d.Day(), int(d.Month()))
		assert.Contains(t, []Gender{Masculine, Feminine, Neutral}, entry.Gender,
			"Unexpected gender for %d/%d", d.Day(), int(d.Month()))
		count++
	}

	assert.Equal(t, 366, count)
	assert.Equal(t, 366, table.Len())
}

func TestLookup(t *testing.T) {
	table := DefaultTable()

	entry, err := table.Lookup(1, 1)
	require.NoError(t, err)
	assert.Equal(t, Entry{"veisalgie", "veisalgies", Feminine}, entry)

	entry, err = table.Lookup(8, 7)
	require.NoError(t, err)
	assert.Equal(t, Entry{"tzatziki", "tzatzikis", Neutral}, entry)
}

func TestLookupMissing(t *testing.T) {
	table := DefaultTable()

	_, err := table.Lookup(2, 30)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoEntry)

	_, err = table.Lookup(13, 1)
	assert.ErrorIs(t, err, ErrNoEntry)
}

func TestDayNames(t *testing.T) {
	for i := 0; i < 7; i++ {
		name, err := DefaultDayNames.Name(i)
		require.NoError(t, err, "Failed to resolve weekday %d", i)
		assert.NotEmpty(t, name)
	}

	first, err := DefaultDayNames.Name(0)
	require.NoError(t, err)
	assert.Equal(t, "Lourdi", first)

	last, err := DefaultDayNames.Name(6)
	require.NoError(t, err)
	assert.Equal(t, "Mitanche", last)
}

func TestDayNamesInvalidIndex(t *testing.T) {
	for _, i := range []int{-1, 7, 42} {
		_, err := DefaultDayNames.Name(i)
		assert.ErrorIs(t, err, ErrInvalidWeekday, "Expected error for index %d", i)
	}
}

func TestWeekdayIndex(t *testing.T) {
	assert.Equal(t, 0, WeekdayIndex(time.Monday))
	assert.Equal(t, 4, WeekdayIndex(time.Friday))
	assert.Equal(t, 6, WeekdayIndex(time.Sunday))
}
