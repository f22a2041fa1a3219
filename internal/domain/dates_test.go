package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	jan10 := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"slash separated", "2025/01/10", jan10},
		{"dash separated", "2025-01-10", jan10},
		{"rfc3339", "2025-01-10T00:00:00Z", jan10},
		{"datetime", "2025-01-10 00:00:00", jan10},
		{"surrounding whitespace", "  2025/01/10  ", jan10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}

	invalid := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"garbage", "not a date"},
		{"wrong order", "10/01/2025"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}
