package arpakana

import (
	"fmt"
	"strings"

	"github.com/jiroshimaya/arpakana/arpabet"
)

// Vowel cores used between decomposition and composition. Every vowel
// phoneme decomposes into exactly one core, optionally followed by a
// kana tail (ー, イ, ウ).
var vowelCores = map[string]bool{"a": true, "i": true, "u": true, "e": true, "o": true}

// vowelSplits maps a vowel phoneme to its core + tail decomposition.
var vowelSplits = map[arpabet.Phoneme][]string{
	arpabet.PhonAA: {"a"},
	arpabet.PhonAE: {"a"},
	arpabet.PhonAH: {"a"},
	arpabet.PhonAO: {"o", "ー"},
	arpabet.PhonAW: {"a", "ウ"},
	arpabet.PhonAX: {"a"},
	arpabet.PhonAY: {"a", "イ"},
	arpabet.PhonEH: {"e"},
	arpabet.PhonEY: {"e", "イ"},
	arpabet.PhonIH: {"i"},
	arpabet.PhonIX: {"i"},
	arpabet.PhonIY: {"i", "ー"},
	arpabet.PhonOW: {"o", "ウ"},
	arpabet.PhonOY: {"o", "イ"},
	arpabet.PhonOH: {"o", "ー"},
	arpabet.PhonUH: {"u"},
	arpabet.PhonUW: {"u", "ー"},
	arpabet.PhonUX: {"u"},
	// ER/AXR are rewritten to AX R before this table applies; the
	// entries keep direct decomposition total anyway.
	arpabet.PhonER:  {"a", "ー"},
	arpabet.PhonAXR: {"a", "ー"},
}

// cvRows defines consonant(+glide) clusters and their kana for each
// vowel core, in a-i-u-e-o order. The empty cluster row covers bare
// vowel cores. T S stays out of this table: before a vowel the two
// compose separately (B EH NG T S AH N → ベントゥサン), and only the
// vowel-less cluster collapses to ツ.
var cvRows = []struct {
	cluster []string
	kana    [5]string
}{
	{nil, [5]string{"ア", "イ", "ウ", "エ", "オ"}},
	// Single consonants
	{[]string{"B"}, [5]string{"バ", "ビ", "ブ", "ベ", "ボ"}},
	{[]string{"CH"}, [5]string{"チャ", "チ", "チュ", "チェ", "チョ"}},
	{[]string{"D"}, [5]string{"ダ", "ディ", "ドゥ", "デ", "ド"}},
	{[]string{"DH"}, [5]string{"ダ", "ディ", "ドゥ", "デ", "ド"}},
	{[]string{"DX"}, [5]string{"ラ", "リ", "ル", "レ", "ロ"}},
	{[]string{"F"}, [5]string{"ファ", "フィ", "フ", "フェ", "フォ"}},
	{[]string{"G"}, [5]string{"ガ", "ギ", "グ", "ゲ", "ゴ"}},
	{[]string{"HH"}, [5]string{"ハ", "ヒ", "フ", "ヘ", "ホ"}},
	{[]string{"JH"}, [5]string{"ジャ", "ジ", "ジュ", "ジェ", "ジョ"}},
	{[]string{"K"}, [5]string{"カ", "キ", "ク", "ケ", "コ"}},
	{[]string{"L"}, [5]string{"ラ", "リ", "ル", "レ", "ロ"}},
	{[]string{"M"}, [5]string{"マ", "ミ", "ム", "メ", "モ"}},
	{[]string{"N"}, [5]string{"ナ", "ニ", "ヌ", "ネ", "ノ"}},
	{[]string{"NG"}, [5]string{"ンガ", "ンギ", "ング", "ンゲ", "ンゴ"}},
	{[]string{"NX"}, [5]string{"ナ", "ニ", "ヌ", "ネ", "ノ"}},
	{[]string{"P"}, [5]string{"パ", "ピ", "プ", "ペ", "ポ"}},
	{[]string{"R"}, [5]string{"ラ", "リ", "ル", "レ", "ロ"}},
	{[]string{"S"}, [5]string{"サ", "シ", "ス", "セ", "ソ"}},
	{[]string{"SH"}, [5]string{"シャ", "シ", "シュ", "シェ", "ショ"}},
	{[]string{"T"}, [5]string{"タ", "ティ", "トゥ", "テ", "ト"}},
	{[]string{"TH"}, [5]string{"サ", "シ", "ス", "セ", "ソ"}},
	{[]string{"V"}, [5]string{"ヴァ", "ヴィ", "ヴ", "ヴェ", "ヴォ"}},
	{[]string{"W"}, [5]string{"ワ", "ウィ", "ウ", "ウェ", "ウォ"}},
	{[]string{"Y"}, [5]string{"ヤ", "イ", "ユ", "イェ", "ヨ"}},
	{[]string{"Z"}, [5]string{"ザ", "ズィ", "ズ", "ゼ", "ゾ"}},
	{[]string{"ZH"}, [5]string{"ジャ", "ジ", "ジュ", "ジェ", "ジョ"}},
	// 拗音 clusters (consonant + Y) and TS
	{[]string{"K", "Y"}, [5]string{"キャ", "キィ", "キュ", "キェ", "キョ"}},
	{[]string{"G", "Y"}, [5]string{"ギャ", "ギィ", "ギュ", "ギェ", "ギョ"}},
	{[]string{"S", "Y"}, [5]string{"シャ", "シィ", "シュ", "シェ", "ショ"}},
	{[]string{"Z", "Y"}, [5]string{"ジャ", "ジィ", "ジュ", "ジェ", "ジョ"}},
	{[]string{"T", "Y"}, [5]string{"チャ", "チィ", "チュ", "チェ", "チョ"}},
	{[]string{"D", "Y"}, [5]string{"ジャ", "ジィ", "ジュ", "ジェ", "ジョ"}},
	{[]string{"HH", "Y"}, [5]string{"ヒャ", "ヒィ", "ヒュ", "ヒェ", "ヒョ"}},
	{[]string{"B", "Y"}, [5]string{"ビャ", "ビィ", "ビュ", "ビェ", "ビョ"}},
	{[]string{"P", "Y"}, [5]string{"ピャ", "ピィ", "ピュ", "ピェ", "ピョ"}},
	{[]string{"M", "Y"}, [5]string{"ミャ", "ミィ", "ミュ", "ミェ", "ミョ"}},
	{[]string{"R", "Y"}, [5]string{"リャ", "リィ", "リュ", "リェ", "リョ"}},
	{[]string{"L", "Y"}, [5]string{"リャ", "リィ", "リュ", "リェ", "リョ"}},
	{[]string{"N", "Y"}, [5]string{"ニャ", "ニィ", "ニュ", "ニェ", "ニョ"}},
	{[]string{"F", "Y"}, [5]string{"フャ", "フィ", "フュ", "フェ", "フョ"}},
}

// standaloneRows maps consonants with no following vowel to kana.
var standaloneRows = []struct {
	cluster []string
	kana    string
}{
	{[]string{"B"}, "ブ"},
	{[]string{"CH"}, "チ"},
	{[]string{"D"}, "ド"},
	{[]string{"DH"}, "ズ"},
	{[]string{"DX"}, "ル"},
	{[]string{"F"}, "フ"},
	{[]string{"G"}, "グ"},
	{[]string{"HH"}, "フ"},
	{[]string{"JH"}, "ジ"},
	{[]string{"K"}, "ク"},
	{[]string{"L"}, "ル"},
	{[]string{"M"}, "ム"},
	{[]string{"N"}, "ン"},
	{[]string{"NG"}, "ン"},
	{[]string{"NX"}, "ン"},
	{[]string{"P"}, "プ"},
	{[]string{"R"}, "ア"},
	{[]string{"S"}, "ス"},
	{[]string{"SH"}, "シュ"},
	{[]string{"T"}, "トゥ"},
	{[]string{"TH"}, "ス"},
	{[]string{"V"}, "ヴ"},
	{[]string{"W"}, "ウ"},
	{[]string{"Y"}, "イ"},
	{[]string{"Z"}, "ズ"},
	{[]string{"ZH"}, "ジュ"},
	{[]string{"T", "S"}, "ツ"},
}

// sokuonClusters are the onsets that take a leading ッ after a vowel.
var sokuonClusters = map[string]bool{
	"CH":  true,
	"SH":  true,
	"JH":  true,
	"ZH":  true,
	"T S": true,
}

// Per-length lookup maps, indexed by pattern length (space-joined keys).
// Built once in init; read-only afterwards.
var (
	cvMaps         [4]map[string]string // consonant cluster + vowel core
	rMaps          [4]map[string]string // cvMaps entries starting with R
	standaloneMaps [3]map[string]string
)

func init() {
	for l := 1; l <= 3; l++ {
		cvMaps[l] = make(map[string]string)
		rMaps[l] = make(map[string]string)
	}
	standaloneMaps[1] = make(map[string]string)
	standaloneMaps[2] = make(map[string]string)

	cores := []string{"a", "i", "u", "e", "o"}
	for _, row := range cvRows {
		for vi, core := range cores {
			pattern := append(append([]string{}, row.cluster...), core)
			key := strings.Join(pattern, " ")
			l := len(pattern)
			if _, dup := cvMaps[l][key]; dup {
				panic(fmt.Sprintf("arpakana: duplicate pattern %q", key))
			}
			cvMaps[l][key] = row.kana[vi]
			if len(row.cluster) > 0 && row.cluster[0] == "R" {
				rMaps[l][key] = row.kana[vi]
			}
		}
	}
	for _, row := range standaloneRows {
		key := strings.Join(row.cluster, " ")
		l := len(row.cluster)
		if _, dup := standaloneMaps[l][key]; dup {
			panic(fmt.Sprintf("arpakana: duplicate standalone pattern %q", key))
		}
		standaloneMaps[l][key] = row.kana
	}
}
