package planner

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	rangePattern  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)`)
	numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ParseDuration converts a free-text duration string ("5-10 min", "1 hour",
// "30 sec") to minutes. A range "A-B" resolves to the mean of A and B. Units
// are detected by substring: "hour" multiplies by 60, "sec" divides by 60,
// anything else (including no unit) is read as minutes. Empty or unparseable
// input yields 0; the function never fails.
func ParseDuration(text string) float64 {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return 0
	}

	var value float64
	if m := rangePattern.FindStringSubmatch(text); m != nil {
		lo, _ := strconv.ParseFloat(m[1], 64)
		hi, _ := strconv.ParseFloat(m[2], 64)
		value = (lo + hi) / 2
	} else if m := numberPattern.FindString(text); m != "" {
		value, _ = strconv.ParseFloat(m, 64)
	} else {
		return 0
	}

	switch {
	case strings.Contains(text, "hour"):
		return value * 60
	case strings.Contains(text, "sec"):
		return value / 60
	default:
		return value
	}
}

// containsTimeUnit reports whether a free-text field carries a duration unit,
// which means it should be parsed as a duration rather than a count.
func containsTimeUnit(text string) bool {
	text = strings.ToLower(text)
	return strings.Contains(text, "min") ||
		strings.Contains(text, "sec") ||
		strings.Contains(text, "hour")
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
