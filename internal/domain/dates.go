package domain

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the accepted textual date forms, tried in order. Callers
// historically pass slash-separated dates ("2025/01/10"), so that layout
// comes first.
var dateLayouts = []string{
	"2006/01/02",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseDate normalizes a textual date into a time.Time at the validation
// boundary. Returns ErrInvalidDate when the input is blank or matches none
// of the accepted layouts. Stored entities never carry raw date strings.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
