// Package detect implements the three-tier similarity pipeline: document
// TF-IDF scoring, lexical sentence alignment, and semantic sentence
// alignment via a pretrained embedding model.
package detect

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/hyperjump/ruiji/internal/config"
	"github.com/hyperjump/ruiji/internal/embedding"
	"github.com/hyperjump/ruiji/internal/models"
	"go.uber.org/zap"
)

// Method names reported in tier results.
const (
	lexicalMethod  = "TF-IDF + Cosine Similarity"
	sentenceMethod = "Sentence-Level Detection"
	semanticMethod = "Semantic Similarity (Transformer)"
)

// Detector runs the three similarity tiers over a pair of documents.
// The embedder is process-wide, read-only state shared by all requests;
// it may be nil when the embedding model failed to load, in which case
// the semantic tier reports unavailability instead of failing.
type Detector struct {
	embedder embedding.Embedder
	cfg      *config.DetectConfig
	logger   *zap.Logger
}

// NewDetector creates a detector. embedder may be nil (semantic tier disabled).
func NewDetector(embedder embedding.Embedder, cfg *config.DetectConfig, logger *zap.Logger) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{
		embedder: embedder,
		cfg:      cfg,
		logger:   logger,
	}
}

// TransformerAvailable reports whether the semantic tier can run.
func (d *Detector) TransformerAvailable() bool {
	return d.embedder != nil
}

// Check runs all three tiers in sequence and aggregates the summary.
// Tier failures degrade to zero/empty results embedded in the report;
// Check itself never fails.
func (d *Detector) Check(ctx context.Context, text1, text2 string) *models.Report {
	level1 := d.LexicalScore(text1, text2)
	level2 := d.SentenceScore(text1, text2)
	level3 := d.SemanticScore(ctx, text1, text2)

	semanticCount := 0
	if level3.SemanticPlagiarizedCount != nil {
		semanticCount = *level3.SemanticPlagiarizedCount
	}
	return &models.Report{
		Success:        true,
		Level1Basic:    level1,
		Level2Sentence: level2,
		Level3Semantic: level3,
		Summary: models.Summary{
			OverallSimilarity:            level1.SimilarityPercentage,
			TotalPlagiarizedSentences:    level2.PlagiarizedCount,
			SemanticPlagiarizedSentences: semanticCount,
			Text1Length:                  utf8.RuneCountInString(text1),
			Text2Length:                  utf8.RuneCountInString(text2),
		},
	}
}

// comparable reports whether a sentence is long enough to take part in
// alignment. Short fragments are skipped but still counted in totals.
func (d *Detector) comparable(sentence string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(sentence)) >= d.cfg.MinSentenceLength
}
