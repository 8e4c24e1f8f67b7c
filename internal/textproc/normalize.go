// Package textproc provides text normalization and sentence segmentation
// for the similarity pipeline.
package textproc

import (
	"strings"
	"unicode"
)

// Normalize lowercases s, removes punctuation and symbol runes, and
// collapses runs of whitespace to single spaces with the ends trimmed.
// It is a total function: any input yields a valid (possibly empty) result.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// RemoveStopwords drops whitespace-delimited tokens found in the English
// stopword set, preserving the order of the remaining tokens. Intended to
// run on already-normalized (lowercased) text.
func RemoveStopwords(s string) string {
	words := strings.Fields(s)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if stopwords[w] {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}
