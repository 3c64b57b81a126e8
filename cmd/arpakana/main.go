package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/jiroshimaya/arpakana"
)

func main() {
	unknown := flag.String("unknown", "", "string substituted for unmapped phonemes")
	sokuon := flag.Bool("sokuon", false, "insert ッ before CH/SH/JH/ZH/TS onsets after a vowel")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: arpakana [flags] [PHONEME ...]")
		fmt.Fprintln(os.Stderr, "  Converts ARPAbet phonemes to katakana.")
		fmt.Fprintln(os.Stderr, "  With arguments, converts them as one sequence:")
		fmt.Fprintln(os.Stderr, "    arpakana HH AH0 L OW1")
		fmt.Fprintln(os.Stderr, "  Without arguments, converts each stdin line.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	opts := []arpakana.Option{arpakana.WithUnknown(*unknown)}
	if *sokuon {
		opts = append(opts, arpakana.WithSokuon(true))
	}

	if flag.NArg() > 0 {
		fmt.Println(arpakana.TokensToKana(flag.Args(), opts...))
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()
	for scanner.Scan() {
		fmt.Fprintln(writer, arpakana.ToKana(scanner.Text(), opts...))
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
		os.Exit(1)
	}
}
