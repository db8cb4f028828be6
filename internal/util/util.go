// Package util holds small string and formatting helpers.
package util

import (
	"fmt"
	"strings"
	"time"
)

// StripBraces removes every '{' and '}' from s. Owner addresses arrive wrapped
// in braces when they come from templated links.
func StripBraces(s string) string {
	return strings.NewReplacer("{", "", "}", "").Replace(s)
}

// TrimLastAtSegment drops the last "@..." segment of an address:
// "taro@example.com" becomes "taro", "a@b@c" becomes "a@b", and a value
// without '@' becomes "".
func TrimLastAtSegment(address string) string {
	idx := strings.LastIndex(address, "@")
	if idx < 0 {
		return ""
	}

	return address[:idx]
}

// Mask keeps the first n characters of a secret-ish value for logging.
func Mask(value string, n int) string {
	if len(value) <= n {
		return value
	}

	return value[:n] + "..."
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
