package planner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"5-10 min", 7.5},
		{"1 hour", 60},
		{"2 hours", 120},
		{"30 sec", 0.5},
		{"90 seconds", 1.5},
		{"15 min", 15},
		{"20 minutes", 20},
		{"45", 45},       // no unit defaults to minutes
		{"10-20", 15},    // range without unit
		{"1-2 hour", 90}, // range mean before unit scaling
		{"  5 Min ", 5},  // whitespace and case
		{"", 0},
		{"soon", 0},
		{"a few", 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ParseDuration(tc.in), "input %q", tc.in)
	}
}

func TestContainsTimeUnit(t *testing.T) {
	require.True(t, containsTimeUnit("5-10 min"))
	require.True(t, containsTimeUnit("30 SEC"))
	require.True(t, containsTimeUnit("1 hour"))
	require.False(t, containsTimeUnit("12"))
	require.False(t, containsTimeUnit("8-12"))
}
