// filepath: internal/services/normalize_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSearchText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"The.Movie_2020", "themovie2020"},
		{"the movie 2020", "themovie2020"},
		{"THE-MOVIE 2020", "themovie2020"},
		{"  spaced   out  ", "spacedout"},
		{"already", "already"},
		{"", ""},
		{"...___---", ""}, // separators only
		{"A.b_C-d e", "abcde"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, NormalizeSearchText(tc.input), "Mismatch for input: %q", tc.input)
	}
}

func TestNormalizeSearchText_Idempotent(t *testing.T) {
	inputs := []string{"The.Movie_2020", "plain", "", "..--..", "Mixed Case-Title_v2"}
	for _, in := range inputs {
		once := NormalizeSearchText(in)
		assert.Equal(t, once, NormalizeSearchText(once), "Normalizing twice changed the result for %q", in)
	}
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"3", 3},
		{"1", 1},
		{"0", 1},
		{"-5", 1},
		{"abc", 1},
		{"", 1},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, normalizePage(tc.input), "Mismatch for input: %q", tc.input)
	}
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"25", 25},
		{"", 50},     // parse failure falls back to the default
		{"abc", 50},  // parse failure falls back to the default
		{"500", 100}, // clamped to max
		{"0", 1},     // clamped to min
		{"-3", 1},    // clamped to min
		{"100", 100},
		{"1", 1},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, normalizeLimit(tc.input, 50, 100), "Mismatch for input: %q", tc.input)
	}
}

func TestIsAllDigits(t *testing.T) {
	assert.True(t, isAllDigits("123"))
	assert.True(t, isAllDigits("0"))
	assert.False(t, isAllDigits(""))
	assert.False(t, isAllDigits("12a"))
	assert.False(t, isAllDigits("1.2"))
	assert.False(t, isAllDigits(" 12"))
}
