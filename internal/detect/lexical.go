package detect

import (
	"github.com/hyperjump/ruiji/internal/models"
	"github.com/hyperjump/ruiji/internal/textproc"
	"github.com/hyperjump/ruiji/internal/vector"
	"github.com/hyperjump/ruiji/pkg/utils"
	"go.uber.org/zap"
)

// LexicalScore is the first tier: a TF-IDF vector space fitted over the two
// whole normalized documents, scored by cosine similarity. A vectorization
// failure (no scorable vocabulary) degrades to a zero score with an error
// field instead of propagating.
func (d *Detector) LexicalScore(text1, text2 string) models.LexicalResult {
	doc1 := textproc.Normalize(text1)
	doc2 := textproc.Normalize(text2)
	if d.cfg.RemoveStopwords {
		doc1 = textproc.RemoveStopwords(doc1)
		doc2 = textproc.RemoveStopwords(doc2)
	}

	v1, v2, err := vector.TFIDFVectors(doc1, doc2)
	if err != nil {
		d.logger.Warn("lexical tier degraded", zap.Error(err))
		return models.LexicalResult{
			Method: lexicalMethod,
			Error:  err.Error(),
		}
	}

	return models.LexicalResult{
		Method:               lexicalMethod,
		SimilarityPercentage: utils.RoundPercent(vector.Cosine64(v1, v2)),
		Explanation:          "Measures word overlap and frequency similarity",
	}
}
