package wallet

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"2024-01-01T16:00:00Z", NewDate(2024, time.January, 1), false},
		{"invalid-date", Date{}, true},
		{"0d", Today(), false},
		{"", Today(), false},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParseDate(%q) error = %v, want error %v", tt.input, err, tt.err)
			continue
		}
		if err == nil && got != tt.expected {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestClose(t *testing.T) {
	c := NewDate(2024, time.January, 1).Close()

	if c.Hour() != 16 || c.Minute() != 0 {
		t.Errorf("Close() = %v, want 16:00", c)
	}
	if _, offset := c.Zone(); offset != 0 {
		t.Errorf("Close() offset = %d, want 0 (UTC)", offset)
	}
	if DateOf(c) != NewDate(2024, time.January, 1) {
		t.Errorf("DateOf(Close()) = %v, want the same day", DateOf(c))
	}
}

func TestDateJSON(t *testing.T) {
	day := NewDate(2024, time.March, 1)

	b, err := json.Marshal(day)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `"2024-03-01"` {
		t.Errorf("Marshal() = %s, want %q", b, "2024-03-01")
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != day {
		t.Errorf("Unmarshal() = %v, want %v", back, day)
	}
}
