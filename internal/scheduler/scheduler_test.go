package scheduler

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronSpec(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:00", "0 9 * * *"},
		{"09:30", "30 9 * * *"},
		{"00:00", "0 0 * * *"},
		{"23:59", "59 23 * * *"},
	}

	for _, tt := range tests {
		got, err := cronSpec(tt.in)
		require.NoError(t, err, "cronSpec(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestCronSpecInvalid(t *testing.T) {
	for _, in := range []string{"", "9h00", "25:00", "09:60", "morning"} {
		_, err := cronSpec(in)
		assert.Error(t, err, "Expected error for %q", in)
	}
}

func TestScheduleDaily(t *testing.T) {
	log := slog.New(slog.DiscardHandler)

	s := New(log)
	err := s.ScheduleDaily("09:00", func() {})
	require.NoError(t, err)

	err = s.ScheduleDaily("not-a-time", func() {})
	assert.Error(t, err)
}
