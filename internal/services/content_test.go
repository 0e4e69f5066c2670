package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPagination(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		skip          int
		expectedLimit int
		expectedSkip  int
	}{
		{"defaults apply", 0, 0, 20, 0},
		{"negative limit falls back to default", -5, 0, 20, 0},
		{"limit above cap is clamped", 500, 0, 100, 0},
		{"limit at cap passes through", 100, 0, 100, 0},
		{"negative skip becomes zero", 20, -10, 20, 0},
		{"valid values pass through", 50, 40, 50, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, skip := clampPagination(tt.limit, tt.skip)

			assert.Equal(t, tt.expectedLimit, limit)
			assert.Equal(t, tt.expectedSkip, skip)
		})
	}
}

func TestDedupeTags(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		expected []string
	}{
		{"duplicates removed keeping first occurrence", []string{"piano", "jazz", "piano", "solo", "jazz"}, []string{"piano", "jazz", "solo"}},
		{"no duplicates unchanged", []string{"a", "b"}, []string{"a", "b"}},
		{"empty input yields empty slice", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dedupeTags(tt.tags))
		})
	}
}
