package vector

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"
)

// ErrEmptyVocabulary is returned when neither document contributes a
// scorable term, so no vector space can be fitted.
var ErrEmptyVocabulary = errors.New("empty vocabulary: documents contain no scorable terms")

// TFIDFVectors fits a term-frequency/inverse-document-frequency vector
// space over exactly the two given documents and returns one L2-normalized
// vector per document. The vocabulary is the union of whitespace tokens of
// at least two runes; idf uses smoothing (ln((1+n)/(1+df)) + 1 with n = 2)
// so terms shared by both documents still carry weight.
//
// A document with no scorable tokens yields a zero vector (cosine 0 against
// anything); only an empty union vocabulary is an error.
func TFIDFVectors(doc1, doc2 string) ([]float64, []float64, error) {
	tokens1 := tokenize(doc1)
	tokens2 := tokenize(doc2)

	vocab := make(map[string]int)
	for _, tok := range tokens1 {
		if _, ok := vocab[tok]; !ok {
			vocab[tok] = len(vocab)
		}
	}
	for _, tok := range tokens2 {
		if _, ok := vocab[tok]; !ok {
			vocab[tok] = len(vocab)
		}
	}
	if len(vocab) == 0 {
		return nil, nil, ErrEmptyVocabulary
	}

	tf1 := termCounts(tokens1, vocab)
	tf2 := termCounts(tokens2, vocab)

	v1 := make([]float64, len(vocab))
	v2 := make([]float64, len(vocab))
	for _, idx := range vocab {
		df := 0
		if tf1[idx] > 0 {
			df++
		}
		if tf2[idx] > 0 {
			df++
		}
		idf := math.Log(3.0/float64(1+df)) + 1
		v1[idx] = float64(tf1[idx]) * idf
		v2[idx] = float64(tf2[idx]) * idf
	}
	normalizeL2(v1)
	normalizeL2(v2)
	return v1, v2, nil
}

// tokenize splits s on whitespace and keeps tokens of at least two runes;
// single-character tokens carry no discriminating weight.
func tokenize(s string) []string {
	fields := strings.Fields(s)
	tokens := fields[:0:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func termCounts(tokens []string, vocab map[string]int) []int {
	counts := make([]int, len(vocab))
	for _, tok := range tokens {
		counts[vocab[tok]]++
	}
	return counts
}

func normalizeL2(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := 1.0 / math.Sqrt(sum)
	for i := range v {
		v[i] *= norm
	}
}
