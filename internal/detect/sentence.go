package detect

import (
	"github.com/hyperjump/ruiji/internal/models"
	"github.com/hyperjump/ruiji/internal/textproc"
	"github.com/hyperjump/ruiji/internal/vector"
	"github.com/hyperjump/ruiji/pkg/utils"
)

// SentenceScore is the second tier: every comparable sentence of text1 is
// scored against every comparable sentence of text2 with a TF-IDF vector
// space fitted per pair, and the best match is kept.
//
// A sentence whose best score reaches the threshold becomes a match carrying
// the original (unnormalized) sentence texts and the 1-based position within
// text1's sentence sequence. Ties keep the first-encountered sentence of
// text2. Degenerate pairs (no shared scorable vocabulary space) are skipped,
// contributing no score.
func (d *Detector) SentenceScore(text1, text2 string) models.SentenceResult {
	sentences1 := textproc.SplitSentences(text1)
	sentences2 := textproc.SplitSentences(text2)

	result := models.SentenceResult{
		Method:               sentenceMethod,
		PlagiarizedSentences: []models.SentenceMatch{},
		TotalSentences:       len(sentences1),
	}
	if len(sentences1) == 0 || len(sentences2) == 0 {
		return result
	}

	for idx, sent1 := range sentences1 {
		if !d.comparable(sent1) {
			continue
		}
		norm1 := textproc.Normalize(sent1)

		best := 0.0
		matching := ""
		for _, sent2 := range sentences2 {
			if !d.comparable(sent2) {
				continue
			}
			v1, v2, err := vector.TFIDFVectors(norm1, textproc.Normalize(sent2))
			if err != nil {
				continue
			}
			if sim := vector.Cosine64(v1, v2); sim > best {
				best = sim
				matching = sent2
			}
		}

		if best >= d.cfg.SentenceThreshold {
			result.PlagiarizedSentences = append(result.PlagiarizedSentences, models.SentenceMatch{
				Sentence:         sent1,
				Similarity:       utils.RoundPercent(best),
				MatchingSentence: matching,
				Position:         idx + 1,
			})
		}
	}

	result.PlagiarizedCount = len(result.PlagiarizedSentences)
	result.Threshold = d.cfg.SentenceThreshold * 100
	return result
}
