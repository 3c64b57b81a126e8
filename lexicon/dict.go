// Package lexicon loads CMU Pronouncing Dictionary files and maps words
// to their ARPAbet phoneme sequences.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jiroshimaya/arpakana/arpabet"
)

// Entry represents a single pronunciation for a word.
type Entry struct {
	Word     string
	Phonemes []arpabet.Phoneme // stress digits stripped
}

// Dictionary holds word-to-pronunciation mappings.
type Dictionary struct {
	Entries map[string][]Entry // word -> list of alternative pronunciations
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		Entries: make(map[string][]Entry),
	}
}

// Add adds a pronunciation entry to the dictionary.
func (d *Dictionary) Add(word string, phonemes []arpabet.Phoneme) {
	d.Entries[word] = append(d.Entries[word], Entry{
		Word:     word,
		Phonemes: phonemes,
	})
}

// Load reads a dictionary in cmudict format.
// Format: WORD  PH1 PH2 PH3 ...
// Comment lines start with ";;;". Alternative pronunciations carry a
// "(n)" suffix on the word (HELLO(2)) and are folded into the base
// word. Stress digits are stripped on load.
func Load(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected word and phonemes, got %q", lineNum, line)
		}

		word := fields[0]
		if idx := strings.IndexByte(word, '('); idx > 0 && strings.HasSuffix(word, ")") {
			word = word[:idx]
		}

		phonemes := make([]arpabet.Phoneme, len(fields)-1)
		for i, p := range fields[1:] {
			phonemes[i] = arpabet.Normalize(p)
		}

		d.Add(word, phonemes)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Lookup returns all pronunciation variants for a word.
func (d *Dictionary) Lookup(word string) []Entry {
	return d.Entries[word]
}

// PhonemeSequence returns the phoneme sequence for a word (first pronunciation).
func (d *Dictionary) PhonemeSequence(word string) ([]arpabet.Phoneme, bool) {
	entries := d.Entries[word]
	if len(entries) == 0 {
		return nil, false
	}
	return entries[0].Phonemes, true
}

// Words returns all words in the dictionary.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.Entries))
	for w := range d.Entries {
		words = append(words, w)
	}
	return words
}
