package version

import (
	"strings"
	"testing"
)

func TestBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{name: "epoch", date: "2026-01-01", expected: 0},
		{name: "next day", date: "2026-01-02", expected: 1},
		{name: "one year later", date: "2027-01-01", expected: 365},
		{name: "across a leap year", date: "2029-01-01", expected: 1096},
		{name: "invalid format", date: "01/01/2026", wantError: true},
		{name: "empty", date: "", wantError: true},
		{name: "before epoch", date: "2025-12-31", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildID(tt.date)
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got id %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("BuildID(%q) = %d, want %d", tt.date, got, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	oldDate, oldCommit := BuildDate, BuildCommit
	t.Cleanup(func() { BuildDate, BuildCommit = oldDate, oldCommit })

	BuildDate, BuildCommit = "", ""
	if s := String(); !strings.Contains(s, "dev build") || !strings.Contains(s, "commit[unknown]") {
		t.Errorf("dev string = %q", s)
	}

	BuildDate, BuildCommit = "2026-10-18", "abc123"
	s := String()
	if !strings.Contains(s, "build 290 (2026-10-18)") || !strings.Contains(s, "commit[abc123]") || !strings.Contains(s, "replay v2") {
		t.Errorf("release string = %q", s)
	}
}
