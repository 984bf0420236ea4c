package model

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // "YYYY-MM-DD", or "" for nil
	}{
		{"plain date", "2023-04-01", "2023-04-01"},
		{"timestamp", "2023-04-01 09:30:00", "2023-04-01"},
		{"rfc3339", "2023-04-01T09:30:00Z", "2023-04-01"},
		{"surrounding whitespace", " 2023-04-01 ", "2023-04-01"},
		{"empty", "", ""},
		{"garbage", "not-a-date", ""},
		{"partial", "2023-04", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.input)
			if tt.want == "" {
				if got != nil {
					t.Errorf("ParseDate(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseDate(%q) = nil, want %s", tt.input, tt.want)
			}
			if got.Format(time.DateOnly) != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got.Format(time.DateOnly), tt.want)
			}
		})
	}
}

func TestParseAttritionFlag(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      int
		wantError bool
	}{
		{"true", "true", 1, false},
		{"false", "false", 0, false},
		{"t", "t", 1, false},
		{"f", "f", 0, false},
		{"one", "1", 1, false},
		{"zero", "0", 0, false},
		{"mixed case", "True", 1, false},
		{"whitespace", " false ", 0, false},
		{"yes is out of domain", "yes", 0, true},
		{"empty", "", 0, true},
		{"numeric junk", "2", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAttritionFlag(tt.input)
			if tt.wantError {
				if err == nil {
					t.Errorf("ParseAttritionFlag(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAttritionFlag(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAttritionFlag(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
