package format

import (
	"strings"
	"testing"
	"time"
)

func TestTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"single digit day", time.Date(2017, time.December, 1, 12, 0, 0, 0, time.Local), "Friday, December  1, 2017, 12:00:00"},
		{"two digit day", time.Date(2024, time.February, 29, 9, 5, 7, 0, time.UTC), "Thursday, February 29, 2024, 09:05:07"},
		{"midnight", time.Date(2000, time.January, 3, 0, 0, 0, 0, time.UTC), "Monday, January  3, 2000, 00:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Timestamp(tt.in); got != tt.want {
				t.Errorf("Timestamp() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNow_UsesLayout(t *testing.T) {
	got := Now()
	if _, err := time.ParseInLocation(timestampLayout, got, time.Local); err != nil {
		t.Fatalf("Now() = %q does not parse with layout: %v", got, err)
	}
}

func TestUserAgent(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"forwarded", "MyBot/1.0", "MyBot/1.0"},
		{"browser", "Mozilla/5.0 (X11; Linux x86_64)", "Mozilla/5.0 (X11; Linux x86_64)"},
		{"missing", "", DefaultUserAgent},
		{"control character", "bad\x00agent", DefaultUserAgent},
		{"newline", "evil\r\nX-Injected: 1", DefaultUserAgent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserAgent(tt.header); got != tt.want {
				t.Errorf("UserAgent(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestDefaultUserAgent(t *testing.T) {
	if !strings.HasPrefix(DefaultUserAgent, ServiceName+"/") {
		t.Errorf("DefaultUserAgent = %q, want prefix %q", DefaultUserAgent, ServiceName+"/")
	}
	if DefaultUserAgent != ServiceName+"/"+Version {
		t.Errorf("DefaultUserAgent = %q, want %q", DefaultUserAgent, ServiceName+"/"+Version)
	}
}
