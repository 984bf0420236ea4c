package pipeline

import (
	"testing"
)

func TestBuildDimension(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want []string // expected names, in ID order
	}{
		{
			name: "duplicates collapse in first-seen order",
			keys: []string{"Sales", "IT", "Sales", "Production", "IT"},
			want: []string{"Sales", "IT", "Production"},
		},
		{
			name: "empty input yields empty dimension",
			keys: nil,
			want: nil,
		},
		{
			name: "sentinel is kept for the cleaner to remove",
			keys: []string{"Unknown", "Sales"},
			want: []string{"Unknown", "Sales"},
		},
		{
			name: "null stand-in is kept and deduplicated",
			keys: []string{"", "Sales", ""},
			want: []string{"", "Sales"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := BuildDimension(tt.keys)
			if len(entries) != len(tt.want) {
				t.Fatalf("got %d entries, want %d", len(entries), len(tt.want))
			}
			for i, entry := range entries {
				if entry.Name != tt.want[i] {
					t.Errorf("entry %d name = %q, want %q", i, entry.Name, tt.want[i])
				}
				if entry.ID != i+1 {
					t.Errorf("entry %d id = %d, want %d", i, entry.ID, i+1)
				}
			}
		})
	}
}
