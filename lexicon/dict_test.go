package lexicon

import (
	"strings"
	"testing"

	"github.com/jiroshimaya/arpakana/arpabet"
)

const testDict = `;;; # CMUdict  -- sample
HELLO  HH AH0 L OW1
HELLO(2)  HH EH0 L OW1
BLUE  B L UW1
TRAIN  T R EY1 N
`

func TestLoadDict(t *testing.T) {
	d, err := Load(strings.NewReader(testDict))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	// HELLO should have 2 entries (variant folded into base word)
	entries := d.Lookup("HELLO")
	if len(entries) != 2 {
		t.Fatalf("HELLO entries = %d, want 2", len(entries))
	}
	if entries[0].Phonemes[0] != arpabet.PhonHH {
		t.Errorf("HELLO phonemes[0] = %s, want HH", entries[0].Phonemes[0])
	}
	// Stress digits are stripped on load
	if entries[0].Phonemes[1] != arpabet.PhonAH {
		t.Errorf("HELLO phonemes[1] = %s, want AH", entries[0].Phonemes[1])
	}
	if entries[1].Phonemes[1] != arpabet.PhonEH {
		t.Errorf("HELLO(2) phonemes[1] = %s, want EH", entries[1].Phonemes[1])
	}
}

func TestPhonemeSequence(t *testing.T) {
	d, err := Load(strings.NewReader(testDict))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	phonemes, ok := d.PhonemeSequence("BLUE")
	if !ok {
		t.Fatal("BLUE not found")
	}
	expected := []arpabet.Phoneme{"B", "L", "UW"}
	if len(phonemes) != len(expected) {
		t.Fatalf("len = %d, want %d", len(phonemes), len(expected))
	}
	for i := range expected {
		if phonemes[i] != expected[i] {
			t.Errorf("phonemes[%d] = %s, want %s", i, phonemes[i], expected[i])
		}
	}
}

func TestLookupMissing(t *testing.T) {
	d, err := Load(strings.NewReader(testDict))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	_, ok := d.PhonemeSequence("MISSING")
	if ok {
		t.Error("should not find nonexistent word")
	}
}

func TestWords(t *testing.T) {
	d, err := Load(strings.NewReader(testDict))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	words := d.Words()
	if len(words) != 3 {
		t.Errorf("len(Words) = %d, want 3", len(words))
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(strings.NewReader("HELLO  HH AH0 L OW1\nORPHAN\n"))
	if err == nil {
		t.Fatal("expected error for line without phonemes")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name the offending line: %v", err)
	}
}
