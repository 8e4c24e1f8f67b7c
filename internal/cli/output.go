// Package cli provides CLI utilities for Ruiji.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hyperjump/ruiji/internal/models"
	"github.com/hyperjump/ruiji/pkg/utils"
)

// ReportOutputFormat is the format for plagiarism report output.
type ReportOutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText ReportOutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON ReportOutputFormat = "json"
)

// WriteReport writes a plagiarism report to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteReport(w io.Writer, report *models.Report, format ReportOutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	default:
		writeReportText(w, report)
		return nil
	}
}

func writeReportText(w io.Writer, report *models.Report) {
	fmt.Fprintf(w, "\nOverall similarity: %.2f%%\n", report.Summary.OverallSimilarity)
	fmt.Fprintf(w, "Text lengths: %d / %d characters\n\n",
		report.Summary.Text1Length, report.Summary.Text2Length)

	fmt.Fprintf(w, "--- %s ---\n", report.Level1Basic.Method)
	if report.Level1Basic.Error != "" {
		fmt.Fprintf(w, "Error: %s\n\n", report.Level1Basic.Error)
	} else {
		fmt.Fprintf(w, "Similarity: %.2f%%\n\n", report.Level1Basic.SimilarityPercentage)
	}

	fmt.Fprintf(w, "--- %s ---\n", report.Level2Sentence.Method)
	fmt.Fprintf(w, "Flagged %d of %d sentences\n",
		report.Level2Sentence.PlagiarizedCount, report.Level2Sentence.TotalSentences)
	for _, m := range report.Level2Sentence.PlagiarizedSentences {
		writeOneMatch(w, m.Position, m.Similarity, m.Sentence, m.MatchingSentence)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "--- %s ---\n", report.Level3Semantic.Method)
	if report.Level3Semantic.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", report.Level3Semantic.Error)
		return
	}
	total, count := 0, 0
	if report.Level3Semantic.TotalSentences != nil {
		total = *report.Level3Semantic.TotalSentences
	}
	if report.Level3Semantic.SemanticPlagiarizedCount != nil {
		count = *report.Level3Semantic.SemanticPlagiarizedCount
	}
	fmt.Fprintf(w, "Flagged %d of %d sentences\n", count, total)
	for _, m := range report.Level3Semantic.SemanticPlagiarizedSentences {
		writeOneMatch(w, m.Position, m.SemanticSimilarity, m.Sentence, m.MatchingSentence)
	}
}

func writeOneMatch(w io.Writer, position int, similarity float64, sentence, matching string) {
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
	fmt.Fprintf(w, "Sentence %d | Similarity: %.2f%%\n", position, similarity)
	fmt.Fprintf(w, "  %s\n", utils.Truncate(sentence, 200))
	fmt.Fprintf(w, "  matches: %s\n", utils.Truncate(matching, 200))
}

// PrintReport prints a plagiarism report to stdout in text format.
func PrintReport(report *models.Report) {
	_ = WriteReport(os.Stdout, report, OutputText)
}
