package arpabet

import "strings"

// Phoneme represents an ARPAbet phoneme with its stress digit removed.
type Phoneme string

const (
	// Silence and pause markers
	PhonSil Phoneme = "SIL" // silence
	PhonSP  Phoneme = "SP"  // short pause
	PhonSPN Phoneme = "SPN" // spoken noise

	// Monophthong vowels
	PhonAA Phoneme = "AA" // [ɑ] as in odd
	PhonAE Phoneme = "AE" // [æ] as in at
	PhonAH Phoneme = "AH" // [ʌ]/[ə] as in hut
	PhonAO Phoneme = "AO" // [ɔ] as in ought
	PhonAX Phoneme = "AX" // [ə] reduced vowel
	PhonEH Phoneme = "EH" // [ɛ] as in ed
	PhonIH Phoneme = "IH" // [ɪ] as in it
	PhonIX Phoneme = "IX" // [ɨ] reduced vowel
	PhonIY Phoneme = "IY" // [iː] as in eat
	PhonOH Phoneme = "OH" // [ɔː] open long o
	PhonUH Phoneme = "UH" // [ʊ] as in hood
	PhonUW Phoneme = "UW" // [uː] as in two
	PhonUX Phoneme = "UX" // [ʉ] reduced vowel

	// Diphthongs
	PhonAW Phoneme = "AW" // [aʊ] as in cow
	PhonAY Phoneme = "AY" // [aɪ] as in hide
	PhonEY Phoneme = "EY" // [eɪ] as in ate
	PhonOW Phoneme = "OW" // [oʊ] as in oat
	PhonOY Phoneme = "OY" // [ɔɪ] as in toy

	// R-colored vowels
	PhonER  Phoneme = "ER"  // [ɝ] as in hurt
	PhonAXR Phoneme = "AXR" // [ɚ] as in butter

	// Stops
	PhonB Phoneme = "B"
	PhonD Phoneme = "D"
	PhonG Phoneme = "G"
	PhonK Phoneme = "K"
	PhonP Phoneme = "P"
	PhonT Phoneme = "T"

	// Fricatives
	PhonDH Phoneme = "DH" // [ð] as in thee
	PhonF  Phoneme = "F"
	PhonHH Phoneme = "HH"
	PhonS  Phoneme = "S"
	PhonSH Phoneme = "SH"
	PhonTH Phoneme = "TH" // [θ] as in theta
	PhonV  Phoneme = "V"
	PhonZ  Phoneme = "Z"
	PhonZH Phoneme = "ZH" // [ʒ] as in seizure

	// Affricates
	PhonCH Phoneme = "CH"
	PhonJH Phoneme = "JH"

	// Nasals
	PhonM  Phoneme = "M"
	PhonN  Phoneme = "N"
	PhonNG Phoneme = "NG"
	PhonNX Phoneme = "NX" // nasal flap

	// Liquids and flap
	PhonL  Phoneme = "L"
	PhonR  Phoneme = "R"
	PhonDX Phoneme = "DX" // alveolar flap as in butter

	// Glides
	PhonW Phoneme = "W"
	PhonY Phoneme = "Y"
)

// AllPhonemes returns the complete ARPAbet inventory known to this module.
func AllPhonemes() []Phoneme {
	return []Phoneme{
		PhonSil, PhonSP, PhonSPN,
		PhonAA, PhonAE, PhonAH, PhonAO, PhonAX, PhonEH, PhonIH, PhonIX,
		PhonIY, PhonOH, PhonUH, PhonUW, PhonUX,
		PhonAW, PhonAY, PhonEY, PhonOW, PhonOY,
		PhonER, PhonAXR,
		PhonB, PhonD, PhonG, PhonK, PhonP, PhonT,
		PhonDH, PhonF, PhonHH, PhonS, PhonSH, PhonTH, PhonV, PhonZ, PhonZH,
		PhonCH, PhonJH,
		PhonM, PhonN, PhonNG, PhonNX,
		PhonL, PhonR, PhonDX,
		PhonW, PhonY,
	}
}

var vowels = map[Phoneme]bool{
	PhonAA: true, PhonAE: true, PhonAH: true, PhonAO: true, PhonAX: true,
	PhonEH: true, PhonIH: true, PhonIX: true, PhonIY: true, PhonOH: true,
	PhonUH: true, PhonUW: true, PhonUX: true,
	PhonAW: true, PhonAY: true, PhonEY: true, PhonOW: true, PhonOY: true,
	PhonER: true, PhonAXR: true,
}

var known map[Phoneme]bool

func init() {
	known = make(map[Phoneme]bool)
	for _, p := range AllPhonemes() {
		known[p] = true
	}
}

// Normalize uppercases a raw token and strips its stress marker.
// A stress marker is a single trailing digit in {0,1,2}; any other
// trailing character is kept as part of the base.
func Normalize(token string) Phoneme {
	t := strings.ToUpper(strings.TrimSpace(token))
	if len(t) >= 2 && t[len(t)-1] >= '0' && t[len(t)-1] <= '2' {
		t = t[:len(t)-1]
	}
	return Phoneme(t)
}

// Stress reports the stress digit of a raw token, or -1 if it carries none.
func Stress(token string) int {
	t := strings.TrimSpace(token)
	if len(t) >= 2 && t[len(t)-1] >= '0' && t[len(t)-1] <= '2' {
		return int(t[len(t)-1] - '0')
	}
	return -1
}

// IsVowel reports whether p is a vowel phoneme.
func IsVowel(p Phoneme) bool { return vowels[p] }

// IsSilence reports whether p is a silence or noise marker.
func IsSilence(p Phoneme) bool {
	return p == PhonSil || p == PhonSP || p == PhonSPN
}

// Known reports whether p belongs to the ARPAbet inventory.
func Known(p Phoneme) bool { return known[p] }
