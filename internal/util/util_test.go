package util

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestStripBraces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "{taro@example.com}", want: "taro@example.com"},
		{in: "taro@example.com", want: "taro@example.com"},
		{in: "{{a}}", want: "a"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := StripBraces(tt.in); got != tt.want {
			t.Fatalf("StripBraces(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrimLastAtSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "taro@example.com", want: "taro"},
		{in: "a@b@example.com", want: "a@b"},
		{in: "fcm-token-without-at", want: ""},
		{in: "@example.com", want: ""},
	}

	for _, tt := range tests {
		if got := TrimLastAtSegment(tt.in); got != tt.want {
			t.Fatalf("TrimLastAtSegment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMask(t *testing.T) {
	t.Parallel()

	if got := Mask("abcdefghijkl", 4); got != "abcd..." {
		t.Fatalf("Mask = %q", got)
	}
	if got := Mask("abc", 4); got != "abc" {
		t.Fatalf("Mask = %q", got)
	}
}
