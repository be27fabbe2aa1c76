// Package algo has the pure extraction and ranking functions of the pipeline.
package algo

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MinWordLength is the shortest run of letters counted as a word.
const MinWordLength = 3

// WordExtractor splits text into lowercase words made of IsLetter runes.
// A word is a maximal run of at least MinLen letters after case folding.
type WordExtractor struct {
	IsLetter  func(r rune) bool
	MinLen    int
	Normalize bool // Compose to NFC first, so a letter plus combining mark counts as one letter
}

// CyrillicWords is the extractor used for the Russian dumps.
var CyrillicWords = WordExtractor{
	IsLetter:  IsCyrillic,
	MinLen:    MinWordLength,
	Normalize: true,
}

// IsCyrillic reports whether r is a lowercase Russian letter.
func IsCyrillic(r rune) bool {
	return (r >= 'а' && r <= 'я') || r == 'ё'
}

// Extract returns the words of s in order of appearance.
func (we WordExtractor) Extract(s string) []string {
	if we.Normalize && !norm.NFC.IsNormalString(s) {
		s = norm.NFC.String(s)
	}

	var (
		words []string
		buf   []byte
		runes int
	)
	flush := func() {
		if runes >= we.MinLen {
			words = append(words, string(buf))
		}
		buf = buf[:0]
		runes = 0
	}

	for _, r := range s {
		r = unicode.ToLower(r)
		if we.IsLetter(r) {
			buf = utf8.AppendRune(buf, r)
			runes++
			continue
		}
		flush()
	}
	flush()
	return words
}

// ExtractWords runs the default extractor over s.
func ExtractWords(s string) []string {
	return CyrillicWords.Extract(s)
}
