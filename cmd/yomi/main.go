package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/jiroshimaya/arpakana"
	"github.com/jiroshimaya/arpakana/lexicon"
)

func main() {
	dictPath := flag.String("dict", "", "path to CMU Pronouncing Dictionary (required)")
	unknown := flag.String("unknown", "", "string substituted for unmapped phonemes in English words")
	sokuon := flag.Bool("sokuon", false, "insert ッ before CH/SH/JH/ZH/TS onsets after a vowel")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: yomi -dict CMUDICT < input.txt > output.txt")
		fmt.Fprintln(os.Stderr, "  Produces a katakana reading for each line of mixed")
		fmt.Fprintln(os.Stderr, "  Japanese/English text. Japanese tokens use the kagome")
		fmt.Fprintln(os.Stderr, "  reading; English words are looked up in the CMU dictionary")
		fmt.Fprintln(os.Stderr, "  and transliterated. Unresolved tokens pass through.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *dictPath == "" {
		fmt.Fprintln(os.Stderr, "error: -dict is required")
		flag.Usage()
		os.Exit(1)
	}

	dict, err := lexicon.LoadFile(*dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading dictionary: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Dictionary: %d words\n", len(dict.Entries))

	tok, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error building tokenizer: %v\n", err)
		os.Exit(1)
	}

	opts := []arpakana.Option{arpakana.WithUnknown(*unknown)}
	if *sokuon {
		opts = append(opts, arpakana.WithSokuon(true))
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		var out strings.Builder
		for _, t := range tok.Tokenize(line) {
			out.WriteString(readToken(t, dict, opts))
		}
		fmt.Fprintln(writer, out.String())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
		os.Exit(1)
	}
}

// readToken resolves one kagome token to katakana. Latin-script tokens
// go through the CMU dictionary; everything else uses the kagome
// reading when the IPA dictionary has one.
func readToken(t tokenizer.Token, dict *lexicon.Dictionary, opts []arpakana.Option) string {
	surface := t.Surface
	if isLatin(surface) {
		if phonemes, ok := dict.PhonemeSequence(strings.ToUpper(surface)); ok {
			tokens := make([]string, len(phonemes))
			for i, p := range phonemes {
				tokens[i] = string(p)
			}
			return arpakana.TokensToKana(tokens, opts...)
		}
		return surface
	}
	if reading, ok := t.Reading(); ok && reading != "*" {
		return reading
	}
	return surface
}

// isLatin reports whether s is non-empty ASCII made of letters plus the
// apostrophes and hyphens cmudict words may contain.
func isLatin(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r == '\'' || r == '-':
		default:
			return false
		}
	}
	return true
}
