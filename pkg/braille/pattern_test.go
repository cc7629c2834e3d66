package braille

import "testing"

func TestFromDots(t *testing.T) {
	tests := []struct {
		name string
		dots []int
		want Pattern
	}{
		{"dot 1", []int{1}, 0b000001},
		{"dots 1 2 5", []int{1, 2, 5}, 0b010011},
		{"dot 6 only", []int{6}, Caps},
		{"all dots", []int{1, 2, 3, 4, 5, 6}, 0b111111},
		{"no dots", nil, Blank},
		{"out of range ignored", []int{0, 7, 3}, 0b000100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromDots(tt.dots...); got != tt.want {
				t.Errorf("FromDots(%v) = %06b, want %06b", tt.dots, got, tt.want)
			}
		})
	}
}

func TestPatternDot(t *testing.T) {
	p := FromDots(1, 3, 6)

	raised := []bool{true, false, true, false, false, true}
	for i, want := range raised {
		if got := p.Dot(i); got != want {
			t.Errorf("Dot(%d) = %v, want %v", i, got, want)
		}
	}

	if p.Dot(-1) || p.Dot(6) {
		t.Error("out-of-range indices should report false")
	}
}

func TestPatternCount(t *testing.T) {
	tests := []struct {
		p    Pattern
		want int
	}{
		{Blank, 0},
		{Caps, 1},
		{FromDots(1, 2, 4, 5), 4},
		{FromDots(1, 2, 3, 4, 5, 6), 6},
	}

	for _, tt := range tests {
		if got := tt.p.Count(); got != tt.want {
			t.Errorf("Count(%06b) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestPatternEmpty(t *testing.T) {
	if !Blank.Empty() {
		t.Error("Blank.Empty() = false, want true")
	}
	if Caps.Empty() {
		t.Error("Caps.Empty() = true, want false")
	}
}

func TestPatternRune(t *testing.T) {
	tests := []struct {
		name string
		p    Pattern
		want rune
	}{
		{"blank maps to braille blank", Blank, '⠀'},
		{"dot 1", FromDots(1), '⠁'},
		{"caps marker", Caps, '⠠'},
		{"full cell", FromDots(1, 2, 3, 4, 5, 6), '⠿'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Rune(); got != tt.want {
				t.Errorf("Rune() = %q, want %q", got, tt.want)
			}
		})
	}
}
