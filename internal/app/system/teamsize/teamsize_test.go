package teamsize

import "testing"

func TestCapacity(t *testing.T) {
	tests := []struct {
		descriptor string
		want       int
	}{
		{"4-5", 5},
		{"3", 3},
		{"10+", 10},
		{"6+", 6},
		{"2-10+", 10},
		{"-7", 7},
		{"", 5},
		{"abc", 5},
		{"four", 5},
		{"4-five", 5},
		{"0", 0},
		{"4 - 5", 5},  // " 5" is not numeric, falls back
		{"3-", 5},     // nothing after the dash
		{"+", 5},      // nothing left after stripping
		{"1-2-3", 3},  // last segment wins
		{"12", 12},
	}

	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			if got := Capacity(tt.descriptor); got != tt.want {
				t.Errorf("Capacity(%q) = %d, want %d", tt.descriptor, got, tt.want)
			}
		})
	}
}
