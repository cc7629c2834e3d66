package braille

import "testing"

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Pattern
		ok   bool
	}{
		{"lowercase a", 'a', FromDots(1), true},
		{"lowercase h", 'h', FromDots(1, 2, 5), true},
		{"lowercase w", 'w', FromDots(2, 4, 5, 6), true},
		{"lowercase z", 'z', FromDots(1, 3, 5, 6), true},
		{"uppercase folds to lowercase", 'H', FromDots(1, 2, 5), true},
		{"digit 1 aliases a", '1', FromDots(1), true},
		{"digit 0 aliases j", '0', FromDots(2, 4, 5), true},
		{"punctuation unmapped", '?', Blank, false},
		{"space unmapped", ' ', Blank, false},
		{"non-latin unmapped", 'ß', Blank, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Encode(tt.r)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Encode(%q) = (%06b, %v), want (%06b, %v)", tt.r, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestEncodeCaseAgreement(t *testing.T) {
	// Every letter must encode identically in both cases.
	for r := 'a'; r <= 'z'; r++ {
		lower, okL := Encode(r)
		upper, okU := Encode(r - 'a' + 'A')
		if !okL || !okU {
			t.Fatalf("letter %q unmapped", r)
		}
		if lower != upper {
			t.Errorf("Encode(%q) = %06b but Encode(%q) = %06b", r, lower, r-'a'+'A', upper)
		}
	}
}

func TestEncodeDigitAliasing(t *testing.T) {
	// Digits 1-9,0 reuse the patterns of a-j.
	letters := "abcdefghij"
	digits := "1234567890"
	for i := range letters {
		lp, _ := Encode(rune(letters[i]))
		dp, _ := Encode(rune(digits[i]))
		if lp != dp {
			t.Errorf("Encode(%q) = %06b, want pattern of %q (%06b)", digits[i], dp, letters[i], lp)
		}
	}
}

func TestSupported(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '5'} {
		if !Supported(r) {
			t.Errorf("Supported(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'!', ' ', '\n', 'é'} {
		if Supported(r) {
			t.Errorf("Supported(%q) = true, want false", r)
		}
	}
}
