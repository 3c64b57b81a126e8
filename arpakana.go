// Package arpakana converts ARPAbet phoneme sequences (CMU Pronouncing
// Dictionary notation) into katakana.
package arpakana

import (
	"strings"

	"github.com/jiroshimaya/arpakana/arpabet"
)

type config struct {
	unknown string
	sokuon  bool
}

// Option configures a conversion.
type Option func(*config)

// WithUnknown sets the string substituted for each phoneme that has no
// kana mapping. The default is the empty string, which drops unknown
// phonemes from the output.
func WithUnknown(s string) Option {
	return func(c *config) { c.unknown = s }
}

// WithSokuon enables insertion of ッ before CH, SH, JH, ZH and T S
// onsets that follow a vowel (M AE CH → マッチ). Off by default.
func WithSokuon(enabled bool) Option {
	return func(c *config) { c.sokuon = enabled }
}

// ToKana converts a whitespace-delimited ARPAbet phoneme string to
// katakana. Tokens are uppercased defensively and stress digits are
// ignored, so "hh ah0 l ow1" behaves like "HH AH L OW".
func ToKana(phonemes string, opts ...Option) string {
	return TokensToKana(strings.Fields(phonemes), opts...)
}

// TokensToKana converts an ordered sequence of ARPAbet phoneme tokens
// to katakana. It is the token-slice counterpart of ToKana and yields
// identical results for equivalent input.
func TokensToKana(tokens []string, opts ...Option) string {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	seq := normalize(tokens)
	seq = expandR(seq)
	seq = decomposeVowels(seq)
	if cfg.sokuon {
		seq = insertSokuon(seq)
	}
	seq = composeLongest(seq, rMaps[:])
	seq = vocalizeR(seq)
	seq = composeLongest(seq, cvMaps[:])
	seq = composeLongest(seq, standaloneMaps[:])
	seq = substituteUnknown(seq, cfg.unknown)
	seq = collapseLongMarks(seq)

	return strings.Join(seq, "")
}

// normalize strips stress markers and drops blank and silence tokens.
func normalize(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		p := arpabet.Normalize(t)
		if p == "" || arpabet.IsSilence(p) {
			continue
		}
		out = append(out, string(p))
	}
	return out
}

// expandR rewrites the r-colored vowels ER and AXR to AX R so that a
// single set of R rules covers them.
func expandR(seq []string) []string {
	out := make([]string, 0, len(seq))
	for _, p := range seq {
		if p == "ER" || p == "AXR" {
			out = append(out, "AX", "R")
			continue
		}
		out = append(out, p)
	}
	return out
}

// decomposeVowels replaces each vowel phoneme with its vowel core and
// optional kana tail. Consonants pass through.
func decomposeVowels(seq []string) []string {
	out := make([]string, 0, len(seq))
	for _, p := range seq {
		if parts, ok := vowelSplits[arpabet.Phoneme(p)]; ok {
			out = append(out, parts...)
			continue
		}
		out = append(out, p)
	}
	return out
}

// insertSokuon inserts ッ before sokuon-taking onsets preceded by a
// vowel core.
func insertSokuon(seq []string) []string {
	if len(seq) == 0 {
		return nil
	}
	out := []string{seq[0]}
	for i := 1; i < len(seq); i++ {
		for l := 2; l >= 1; l-- {
			if i+l > len(seq) {
				continue
			}
			if sokuonClusters[strings.Join(seq[i:i+l], " ")] && vowelCores[out[len(out)-1]] {
				out = append(out, "ッ")
				break
			}
		}
		out = append(out, seq[i])
	}
	return out
}

// composeLongest partitions seq left to right into the longest prefixes
// present in maps (indexed by pattern length) and emits their kana.
// Elements with no match of any length pass through unchanged.
func composeLongest(seq []string, maps []map[string]string) []string {
	out := make([]string, 0, len(seq))
	for i := 0; i < len(seq); {
		matched := false
		for l := len(maps) - 1; l >= 1; l-- {
			if maps[l] == nil || i+l > len(seq) {
				continue
			}
			if kana, ok := maps[l][strings.Join(seq[i:i+l], " ")]; ok {
				out = append(out, kana)
				i += l
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, seq[i])
			i++
		}
	}
	return out
}

// vocalizeR resolves R phonemes left over after the R+vowel patterns
// have been composed: a leading R is ア, R after an a/o core lengthens
// the vowel, R after ー is absorbed, anything else is ア. The previous
// input element decides, as in the vowel tables this follows.
func vocalizeR(seq []string) []string {
	if len(seq) == 0 {
		return nil
	}
	out := make([]string, 0, len(seq))
	if seq[0] == "R" {
		out = append(out, "ア")
	} else {
		out = append(out, seq[0])
	}
	for i := 1; i < len(seq); i++ {
		if seq[i] != "R" {
			out = append(out, seq[i])
			continue
		}
		switch seq[i-1] {
		case "a", "o":
			out = append(out, "ー")
		case "ー":
			// absorbed into the preceding long vowel
		default:
			out = append(out, "ア")
		}
	}
	return out
}

// substituteUnknown replaces every element that is not katakana with
// the configured fallback, one substitution per element.
func substituteUnknown(seq []string, unknown string) []string {
	out := make([]string, 0, len(seq))
	for _, s := range seq {
		if isKatakana(s) {
			out = append(out, s)
			continue
		}
		out = append(out, unknown)
	}
	return out
}

// collapseLongMarks reduces runs of adjacent ー elements to one.
func collapseLongMarks(seq []string) []string {
	out := make([]string, 0, len(seq))
	prevLong := false
	for _, s := range seq {
		if s == "ー" {
			if prevLong {
				continue
			}
			prevLong = true
		} else {
			prevLong = false
		}
		out = append(out, s)
	}
	return out
}

// isKatakana reports whether s is non-empty and consists solely of
// characters in the katakana block (U+30A0..U+30FF, which includes ー).
func isKatakana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 0x30A0 || r > 0x30FF {
			return false
		}
	}
	return true
}
