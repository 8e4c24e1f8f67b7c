package detect

import (
	"context"

	"github.com/hyperjump/ruiji/internal/models"
	"github.com/hyperjump/ruiji/internal/textproc"
	"github.com/hyperjump/ruiji/internal/vector"
	"github.com/hyperjump/ruiji/pkg/utils"
	"go.uber.org/zap"
)

const semanticExplanation = "Detects paraphrased content using meaning-based analysis"

// SemanticScore is the third tier: the same alignment as SentenceScore but
// with dense embeddings from the shared pretrained model. Embeddings for
// text2's comparable sentences are computed once and reused against every
// sentence of text1. When the model is unavailable or any embedding fails,
// the whole tier degrades to an error result and the pipeline continues.
func (d *Detector) SemanticScore(ctx context.Context, text1, text2 string) models.SemanticResult {
	if d.embedder == nil {
		return models.SemanticResult{
			Method:                       semanticMethod,
			SemanticPlagiarizedSentences: []models.SemanticMatch{},
			Error:                        "sentence embedding model not available",
		}
	}

	sentences1 := textproc.SplitSentences(text1)
	sentences2 := textproc.SplitSentences(text2)

	total := len(sentences1)
	count := 0
	result := models.SemanticResult{
		Method:                       semanticMethod,
		SemanticPlagiarizedSentences: []models.SemanticMatch{},
		TotalSentences:               &total,
		SemanticPlagiarizedCount:     &count,
	}
	if len(sentences1) == 0 || len(sentences2) == 0 {
		return result
	}

	valid2 := make([]string, 0, len(sentences2))
	for _, s := range sentences2 {
		if d.comparable(s) {
			valid2 = append(valid2, s)
		}
	}
	if len(valid2) == 0 {
		return result
	}

	embeddings2, err := d.embedder.EmbedBatch(ctx, valid2)
	if err != nil {
		return d.semanticFailure(err)
	}

	for idx, sent1 := range sentences1 {
		if !d.comparable(sent1) {
			continue
		}
		emb1, err := d.embedder.Embed(ctx, sent1)
		if err != nil {
			return d.semanticFailure(err)
		}

		best := 0.0
		bestIdx := -1
		for i, emb2 := range embeddings2 {
			if sim := vector.Cosine(emb1, emb2); sim > best {
				best = sim
				bestIdx = i
			}
		}

		if bestIdx >= 0 && best >= d.cfg.SemanticThreshold {
			result.SemanticPlagiarizedSentences = append(result.SemanticPlagiarizedSentences, models.SemanticMatch{
				Sentence:           sent1,
				SemanticSimilarity: utils.RoundPercent(best),
				MatchingSentence:   valid2[bestIdx],
				Position:           idx + 1,
				Type:               "semantic",
			})
		}
	}

	count = len(result.SemanticPlagiarizedSentences)
	result.Threshold = d.cfg.SemanticThreshold * 100
	result.Explanation = semanticExplanation
	return result
}

func (d *Detector) semanticFailure(err error) models.SemanticResult {
	d.logger.Warn("semantic tier degraded", zap.Error(err))
	return models.SemanticResult{
		Method:                       semanticMethod,
		SemanticPlagiarizedSentences: []models.SemanticMatch{},
		Error:                        err.Error(),
	}
}
