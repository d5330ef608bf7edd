package tui

import (
	"fmt"
	"time"
)

// UnknownAge is shown for pods without a usable creation timestamp
const UnknownAge = "unknown"

// FormatAge formats a duration as s, m, h or d, truncating toward zero.
// Negative durations, from clock skew, render as 0s.
func FormatAge(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}

	switch {
	case secs < 60:
		return fmt.Sprintf("%ds", secs)
	case secs < 3600:
		return fmt.Sprintf("%dm", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%dh", secs/3600)
	default:
		return fmt.Sprintf("%dd", secs/86400)
	}
}
