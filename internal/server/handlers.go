package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hyperjump/ruiji/internal/models"
	"go.uber.org/zap"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":                "healthy",
		"message":               "Plagiarism Detection API is running",
		"transformer_available": s.detector.TransformerAvailable(),
	})
}

func (s *Server) handlePreflight(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	// A fault anywhere in the pipeline must come back as the API's own
	// 500 shape, not chi's bare recoverer response.
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("plagiarism check panicked", zap.Any("panic", rec))
			s.respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"success": false,
				"error":   "Internal server error",
				"message": fmt.Sprint(rec),
			})
		}
	}()

	var req models.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "No JSON data provided")
		return
	}

	text1 := strings.TrimSpace(req.Text1)
	text2 := strings.TrimSpace(req.Text2)
	if text1 == "" || text2 == "" {
		s.respondError(w, http.StatusBadRequest, "Both text1 and text2 are required")
		return
	}
	minLen := s.config.Detect.MinTextLength
	if utf8.RuneCountInString(text1) < minLen || utf8.RuneCountInString(text2) < minLen {
		s.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("Texts must be at least %d characters long", minLen))
		return
	}

	checkID := uuid.New().String()[:8]
	s.logger.Info("processing plagiarism check",
		zap.String("check_id", checkID),
		zap.Int("text1_length", utf8.RuneCountInString(text1)),
		zap.Int("text2_length", utf8.RuneCountInString(text2)),
	)

	report := s.detector.Check(r.Context(), text1, text2)

	s.logger.Debug("plagiarism check complete",
		zap.String("check_id", checkID),
		zap.Float64("overall_similarity", report.Summary.OverallSimilarity),
		zap.Int("plagiarized_sentences", report.Summary.TotalPlagiarizedSentences),
		zap.Int("semantic_matches", report.Summary.SemanticPlagiarizedSentences),
	)
	s.respondJSON(w, http.StatusOK, report)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
