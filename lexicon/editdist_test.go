package lexicon

import (
	"strings"
	"testing"

	"github.com/jiroshimaya/arpakana/arpabet"
)

func p(ps ...arpabet.Phoneme) []arpabet.Phoneme { return ps }

func TestPhonemeEditDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b []arpabet.Phoneme
		want int
	}{
		{"identical", p("K", "AE", "T"), p("K", "AE", "T"), 0},
		{"empty_both", nil, nil, 0},
		{"empty_a", nil, p("AE", "T"), 2},
		{"empty_b", p("AE"), nil, 1},
		{"substitution", p("K", "AE", "T"), p("B", "AE", "T"), 1}, // cat vs bat
		{"insertion", p("K", "AE", "T"), p("K", "AE", "T", "S"), 1},
		{"deletion", p("T", "R", "EY", "N"), p("R", "EY", "N"), 1}, // train vs rain
		{
			"hello_vs_hollow",
			p("HH", "AH", "L", "OW"),
			p("HH", "AA", "L", "OW"),
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PhonemeEditDistance(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("PhonemeEditDistance() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNearest(t *testing.T) {
	d, err := Load(strings.NewReader(testDict))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	// Exact pronunciation
	best, dist, ok := d.Nearest(p("B", "L", "UW"))
	if !ok || best.Word != "BLUE" || dist != 0 {
		t.Errorf("Nearest(B L UW) = %v, %d, %v; want BLUE, 0, true", best.Word, dist, ok)
	}

	// One substitution away
	best, dist, ok = d.Nearest(p("B", "L", "AA"))
	if !ok || best.Word != "BLUE" || dist != 1 {
		t.Errorf("Nearest(B L AA) = %v, %d, %v; want BLUE, 1, true", best.Word, dist, ok)
	}

	// Empty dictionary
	_, _, ok = NewDictionary().Nearest(p("B"))
	if ok {
		t.Error("Nearest on empty dictionary should report ok=false")
	}
}
