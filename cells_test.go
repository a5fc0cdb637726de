package visualwidth

import "testing"

func TestRuneCells(t *testing.T) {
	tests := []struct {
		r        rune
		expected int
	}{
		{'A', 1},
		{'a', 1},
		{'1', 1},
		{' ', 1},
		{'中', 2},
		{'日', 2},
		{'한', 2},
		{'가', 2},
		{'Ａ', 2}, // Fullwidth A
		{0, 0},
	}

	for _, tt := range tests {
		got := RuneCells(tt.r)
		if got != tt.expected {
			t.Errorf("RuneCells(%q) = %d, want %d", tt.r, got, tt.expected)
		}
	}
}

func TestIsWideRune(t *testing.T) {
	tests := []struct {
		r        rune
		expected bool
	}{
		{'A', false},
		{' ', false},
		{'0', false},
		{'中', true},
		{'한', true},
		{'Ａ', true}, // Fullwidth A
	}

	for _, tt := range tests {
		got := IsWideRune(tt.r)
		if got != tt.expected {
			t.Errorf("IsWideRune(%q) = %v, want %v", tt.r, got, tt.expected)
		}
	}
}

func TestStringCells(t *testing.T) {
	tests := []struct {
		s        string
		expected int
	}{
		{"Hello", 5},
		{"中文", 4},
		{"Hello中文", 9},
		{"", 0},
		{"한글", 4},
	}

	for _, tt := range tests {
		got := StringCells(tt.s)
		if got != tt.expected {
			t.Errorf("StringCells(%q) = %d, want %d", tt.s, got, tt.expected)
		}
	}
}
