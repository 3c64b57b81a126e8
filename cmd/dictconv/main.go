package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/jiroshimaya/arpakana"
	"github.com/jiroshimaya/arpakana/lexicon"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: dictconv <cmudict-files...>")
		fmt.Fprintln(os.Stderr, "  Converts CMU Pronouncing Dictionary files to word<TAB>katakana TSV.")
		fmt.Fprintln(os.Stderr, "  Use - to read from stdin. Output goes to stdout.")
		os.Exit(1)
	}

	type entry struct {
		word string
		kana string
	}

	seen := make(map[string]bool) // "word\tkana" -> true
	var entries []entry
	var files int

	for _, path := range os.Args[1:] {
		var dict *lexicon.Dictionary
		var err error
		if path == "-" {
			dict, err = lexicon.Load(os.Stdin)
		} else {
			dict, err = lexicon.LoadFile(path)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "load %s: %v\n", path, err)
			continue
		}
		files++

		for word, variants := range dict.Entries {
			for _, v := range variants {
				tokens := make([]string, len(v.Phonemes))
				for i, p := range v.Phonemes {
					tokens[i] = string(p)
				}
				kana := arpakana.TokensToKana(tokens)
				if kana == "" {
					continue // nothing convertible
				}
				key := word + "\t" + kana
				if seen[key] {
					continue
				}
				seen[key] = true
				entries = append(entries, entry{word, kana})
			}
		}
	}

	// Sort by word for stable output
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].word != entries[j].word {
			return entries[i].word < entries[j].word
		}
		return entries[i].kana < entries[j].kana
	})

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.word, e.kana)
	}

	fmt.Fprintf(os.Stderr, "Converted %d entries from %d files\n", len(entries), files)
}
