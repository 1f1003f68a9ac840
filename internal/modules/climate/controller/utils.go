package controller

import (
	"fmt"
	"time"
)

// Dates travel as yyyy-mm-dd strings end to end; only route parameters get
// format-validated so the lexicographic range comparisons in SQL are sound.
func parseDateParam(name, value string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("missing '%s'", name)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return "", fmt.Errorf("invalid '%s' %q (expected yyyy-mm-dd)", name, value)
	}
	return value, nil
}
