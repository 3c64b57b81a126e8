package lexicon

import "github.com/jiroshimaya/arpakana/arpabet"

// PhonemeEditDistance returns the Levenshtein distance between two
// pronunciations: the number of phoneme insertions, deletions and
// substitutions needed to turn a into b.
func PhonemeEditDistance(a, b []arpabet.Phoneme) int {
	if len(a) == 0 || len(b) == 0 {
		return len(a) + len(b)
	}

	// Two reused rows instead of the full matrix.
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1]
				continue
			}
			cur[j] = 1 + min(prev[j], cur[j-1], prev[j-1])
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// Nearest returns the entry whose pronunciation is closest to phonemes
// by edit distance, along with that distance. Ties resolve to the
// lexicographically smallest word so results are deterministic.
// ok is false for an empty dictionary.
func (d *Dictionary) Nearest(phonemes []arpabet.Phoneme) (best Entry, dist int, ok bool) {
	for _, entries := range d.Entries {
		for _, e := range entries {
			dd := PhonemeEditDistance(phonemes, e.Phonemes)
			if !ok || dd < dist || (dd == dist && e.Word < best.Word) {
				best, dist, ok = e, dd, true
			}
		}
	}
	return best, dist, ok
}
