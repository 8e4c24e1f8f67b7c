// Package models defines the request and response payloads for the ruiji API.
package models

// CheckRequest is the body of POST /check-plagiarism.
type CheckRequest struct {
	Text1 string `json:"text1"`
	Text2 string `json:"text2"`
}

// LexicalResult is the output of the document-level TF-IDF tier.
// On vectorization failure, SimilarityPercentage is 0 and Error is set.
type LexicalResult struct {
	Method               string  `json:"method"`
	SimilarityPercentage float64 `json:"similarity_percentage"`
	Explanation          string  `json:"explanation,omitempty"`
	Error                string  `json:"error,omitempty"`
}

// SentenceMatch pairs a sentence from the first document with its
// best-scoring counterpart in the second. Position is the 1-based index
// of the sentence within the first document's sentence sequence.
type SentenceMatch struct {
	Sentence         string  `json:"sentence"`
	Similarity       float64 `json:"similarity"`
	MatchingSentence string  `json:"matching_sentence"`
	Position         int     `json:"position"`
}

// SentenceResult is the output of the lexical sentence-alignment tier.
// TotalSentences counts every sentence in the first document, including
// those too short to be compared. Threshold is a percentage; it is omitted
// when either document yields no sentences.
type SentenceResult struct {
	Method               string          `json:"method"`
	PlagiarizedSentences []SentenceMatch `json:"plagiarized_sentences"`
	TotalSentences       int             `json:"total_sentences"`
	PlagiarizedCount     int             `json:"plagiarized_count"`
	Threshold            float64         `json:"threshold,omitempty"`
	Error                string          `json:"error,omitempty"`
}

// SemanticMatch mirrors SentenceMatch for the embedding tier; Type is
// always "semantic".
type SemanticMatch struct {
	Sentence           string  `json:"sentence"`
	SemanticSimilarity float64 `json:"semantic_similarity"`
	MatchingSentence   string  `json:"matching_sentence"`
	Position           int     `json:"position"`
	Type               string  `json:"type"`
}

// SemanticResult is the output of the semantic sentence-alignment tier.
// When the embedding model is unavailable or fails, Error is set and the
// count and total fields are omitted.
type SemanticResult struct {
	Method                       string          `json:"method"`
	SemanticPlagiarizedSentences []SemanticMatch `json:"semantic_plagiarized_sentences"`
	TotalSentences               *int            `json:"total_sentences,omitempty"`
	SemanticPlagiarizedCount     *int            `json:"semantic_plagiarized_count,omitempty"`
	Threshold                    float64         `json:"threshold,omitempty"`
	Explanation                  string          `json:"explanation,omitempty"`
	Error                        string          `json:"error,omitempty"`
}

// Summary aggregates the three tiers. Lengths are rune counts of the
// trimmed input texts.
type Summary struct {
	OverallSimilarity            float64 `json:"overall_similarity"`
	TotalPlagiarizedSentences    int     `json:"total_plagiarized_sentences"`
	SemanticPlagiarizedSentences int     `json:"semantic_plagiarized_sentences"`
	Text1Length                  int     `json:"text1_length"`
	Text2Length                  int     `json:"text2_length"`
}

// Report is the full response of a plagiarism check.
type Report struct {
	Success        bool           `json:"success"`
	Level1Basic    LexicalResult  `json:"level1_basic"`
	Level2Sentence SentenceResult `json:"level2_sentence"`
	Level3Semantic SemanticResult `json:"level3_semantic"`
	Summary        Summary        `json:"summary"`
}
