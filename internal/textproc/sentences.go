package textproc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// abbreviations maps common English abbreviations (lowercase, with trailing
// dot) to true. Used to suppress false sentence breaks after abbreviated
// words.
var abbreviations = map[string]bool{
	"mr.": true, "mrs.": true, "ms.": true, "dr.": true, "prof.": true,
	"sr.": true, "jr.": true, "st.": true, "vs.": true, "etc.": true,
	"e.g.": true, "i.e.": true, "u.s.": true, "u.k.": true,
	"a.m.": true, "p.m.": true,
	"inc.": true, "ltd.": true, "co.": true, "corp.": true,
	"no.": true, "fig.": true, "vol.": true, "dept.": true,
	"est.": true, "approx.": true,
}

// SplitSentences segments s into an ordered sequence of trimmed, non-empty
// sentences. A sentence ends at a cluster of terminal punctuation (".", "?",
// "!", or an ellipsis) followed by whitespace and an uppercase letter, or at
// a blank line. Dots belonging to known abbreviations do not end a sentence.
// Empty input yields an empty slice.
func SplitSentences(s string) []string {
	var sentences []string
	emit := func(text string) {
		trimmed := strings.TrimSpace(text)
		if trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}

	sentStart := 0
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		// A blank line forces a sentence break regardless of punctuation.
		if r == '\n' && i+1 < len(s) && s[i+1] == '\n' {
			j := i
			for j < len(s) && s[j] == '\n' {
				j++
			}
			emit(s[sentStart:j])
			sentStart = j
			i = j
			continue
		}

		if !isTerminal(r) {
			i += size
			continue
		}
		if r == '.' && isAbbreviation(s, i) {
			i += size
			continue
		}

		// Consume the entire punctuation cluster (e.g. "?!", "...", "???").
		j := i + size
		for j < len(s) {
			nr, ns := utf8.DecodeRuneInString(s[j:])
			if !isTerminal(nr) {
				break
			}
			j += ns
		}
		if followedByWhitespaceUppercase(s, j) {
			emit(s[sentStart:j])
			sentStart = j
		}
		i = j
	}

	if sentStart < len(s) {
		emit(s[sentStart:])
	}
	return sentences
}

// isTerminal reports whether r can end a sentence.
func isTerminal(r rune) bool {
	return r == '.' || r == '?' || r == '!' || r == '…'
}

// followedByWhitespaceUppercase reports whether position pos in s is followed
// by at least one whitespace character and then an uppercase letter or digit.
func followedByWhitespaceUppercase(s string, pos int) bool {
	i := pos
	foundSpace := false
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			foundSpace = true
			i += size
			continue
		}
		return foundSpace && (unicode.IsUpper(r) || unicode.IsDigit(r))
	}
	return false
}

// isAbbreviation checks whether the dot at byte position dotPos closes a
// known abbreviation rather than a sentence. It walks back across letters
// and dots so multi-part forms like "e.g." and "u.s." match as a whole.
func isAbbreviation(s string, dotPos int) bool {
	start := dotPos
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:start])
		if unicode.IsLetter(r) || r == '.' {
			start -= size
		} else {
			break
		}
	}
	if start == dotPos {
		return false
	}
	token := strings.ToLower(s[start : dotPos+1])
	if abbreviations[token] {
		return true
	}
	// Fall back to the last dot-delimited component so an unknown prefix
	// does not hide a known abbreviation.
	if idx := strings.LastIndexByte(token[:len(token)-1], '.'); idx >= 0 {
		return abbreviations[token[idx+1:]]
	}
	return false
}
