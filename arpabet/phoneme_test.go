package arpabet

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		token string
		want  Phoneme
	}{
		{"AH0", "AH"},
		{"AH1", "AH"},
		{"AH2", "AH"},
		{"AH", "AH"},
		{"ah1", "AH"},
		{" L ", "L"},
		{"HH", "HH"},
		{"OW1", "OW"},
		// Not stress markers: wrong digit, or no base to attach to.
		{"AH3", "AH3"},
		{"1", "1"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := Normalize(tt.token); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestStress(t *testing.T) {
	tests := []struct {
		token string
		want  int
	}{
		{"AH0", 0},
		{"OW1", 1},
		{"ER2", 2},
		{"AH", -1},
		{"AH3", -1},
		{"L", -1},
		{"", -1},
	}

	for _, tt := range tests {
		if got := Stress(tt.token); got != tt.want {
			t.Errorf("Stress(%q) = %d, want %d", tt.token, got, tt.want)
		}
	}
}

func TestClassification(t *testing.T) {
	if !IsVowel(PhonAH) || !IsVowel(PhonER) || !IsVowel(PhonOY) {
		t.Error("vowels not classified as vowels")
	}
	if IsVowel(PhonK) || IsVowel(PhonSil) {
		t.Error("non-vowels classified as vowels")
	}
	if !IsSilence(PhonSil) || !IsSilence(PhonSP) || !IsSilence(PhonSPN) {
		t.Error("silences not classified as silences")
	}
	if IsSilence(PhonAH) {
		t.Error("AH classified as silence")
	}
}

func TestKnown(t *testing.T) {
	for _, p := range AllPhonemes() {
		if !Known(p) {
			t.Errorf("%s not known", p)
		}
	}
	if Known("XYZ") {
		t.Error("XYZ should not be known")
	}
	if Known("AH0") {
		t.Error("raw stressed token should not be known without Normalize")
	}
}
