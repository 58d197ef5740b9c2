package taxform

import (
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2024, 1, 16)
	d2 := NewDate(2024, 1, 16)

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
		// Salary certificate format (dotted, day first)
		{"16.01.2024", NewDate(2024, time.January, 16), false},
		{"5.3.2024", NewDate(2024, time.March, 5), false},
		{"31.12.2023", NewDate(2023, time.December, 31), false},

		// Brokerage export format (abbreviated month)
		{"Jan-16-2024", NewDate(2024, time.January, 16), false},
		{"Jun-01-2020", NewDate(2020, time.June, 1), false},
		{"Dec-30-2024", NewDate(2024, time.December, 30), false},

		// ISO format used by command-line flags
		{"2024-01-16", NewDate(2024, time.January, 16), false},
		{"2024-7-1", NewDate(2024, time.July, 1), false},

		// Surrounding whitespace is tolerated
		{" 16.01.2024 ", NewDate(2024, time.January, 16), false},

		// Tokens that look numeric but are not dates
		{"123456", Date{}, true},
		{"$549.75", Date{}, true},
		{"2255.5", Date{}, true},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	tests := []struct {
		date     Date
		expected string
	}{
		{NewDate(2024, time.January, 16), "16.01.2024"},
		{NewDate(2020, time.June, 1), "01.06.2020"},
		{NewDate(2023, time.December, 31), "31.12.2023"},
	}

	for _, tt := range tests {
		if got := tt.date.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestDateCompare(t *testing.T) {
	early := MustParse("Jan-16-2024")
	late := MustParse("17.01.2024")

	if !early.Before(late) {
		t.Errorf("%v should be before %v", early, late)
	}
	if !late.After(early) {
		t.Errorf("%v should be after %v", late, early)
	}
	if c := early.Compare(late); c != -1 {
		t.Errorf("Compare() = %d, want -1", c)
	}
	if c := early.Compare(MustParse("2024-01-16")); c != 0 {
		t.Errorf("Compare() = %d, want 0: both spellings name the same day", c)
	}
}
