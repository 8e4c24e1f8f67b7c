package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hyperjump/ruiji/internal/config"
	"github.com/hyperjump/ruiji/internal/detect"
	"github.com/hyperjump/ruiji/internal/embedding"
	"github.com/hyperjump/ruiji/internal/models"
	"go.uber.org/zap"
)

const testParagraph = "Artificial intelligence is transforming modern industries. " +
	"Machine learning models improve with more data. " +
	"Neural networks can recognize complex patterns."

func newTestServer(t *testing.T, embedder embedding.Embedder) *Server {
	t.Helper()
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	detector := detect.NewDetector(embedder, &cfg.Detect, zap.NewNop())
	return NewServer(detector, cfg, zap.NewNop())
}

func postCheck(t *testing.T, srv *Server, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/check-plagiarism", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, r)
	return w
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, embedding.NewMockEmbedder(64))
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	var out struct {
		Status               string `json:"status"`
		Message              string `json:"message"`
		TransformerAvailable bool   `json:"transformer_available"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Status != "healthy" || !out.TransformerAvailable {
		t.Errorf("got %+v", out)
	}
}

func TestHandleHealthNoTransformer(t *testing.T) {
	srv := newTestServer(t, nil)
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, r)

	var out struct {
		TransformerAvailable bool `json:"transformer_available"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.TransformerAvailable {
		t.Error("transformer_available must be false without an embedder")
	}
}

func TestHandleCheckIdenticalTexts(t *testing.T) {
	srv := newTestServer(t, embedding.NewMockEmbedder(384))
	body, _ := json.Marshal(models.CheckRequest{Text1: testParagraph, Text2: testParagraph})
	w := postCheck(t, srv, body)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body: %s", w.Code, w.Body.String())
	}
	var report models.Report
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatal(err)
	}
	if !report.Success {
		t.Error("success must be true")
	}
	if report.Summary.OverallSimilarity != 100 {
		t.Errorf("overall similarity: got %v, want 100", report.Summary.OverallSimilarity)
	}
	if report.Summary.TotalPlagiarizedSentences != 3 {
		t.Errorf("plagiarized sentences: got %d, want 3", report.Summary.TotalPlagiarizedSentences)
	}
	if report.Level2Sentence.Threshold != 70 {
		t.Errorf("tier 2 threshold: got %v", report.Level2Sentence.Threshold)
	}
}

func TestHandleCheckUnrelatedTexts(t *testing.T) {
	srv := newTestServer(t, embedding.NewMockEmbedder(384))
	body, _ := json.Marshal(models.CheckRequest{
		Text1: "The climate is warming at an alarming rate. Polar ice continues to melt every year.",
		Text2: "Stock markets rallied strongly this quarter. Investors expect further gains soon.",
	})
	w := postCheck(t, srv, body)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	var report models.Report
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatal(err)
	}
	if report.Summary.OverallSimilarity > 10 {
		t.Errorf("overall similarity: got %v, want near 0", report.Summary.OverallSimilarity)
	}
	if report.Summary.TotalPlagiarizedSentences != 0 {
		t.Errorf("plagiarized sentences: got %d, want 0", report.Summary.TotalPlagiarizedSentences)
	}
}

func TestHandleCheckEmptyBody(t *testing.T) {
	srv := newTestServer(t, nil)
	w := postCheck(t, srv, []byte(`{}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", w.Code)
	}
	var out struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Error == "" {
		t.Error("400 response must carry an error message")
	}
}

func TestHandleCheckInvalidJSON(t *testing.T) {
	srv := newTestServer(t, nil)
	w := postCheck(t, srv, []byte(`not json`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", w.Code)
	}
}

func TestHandleCheckShortTexts(t *testing.T) {
	srv := newTestServer(t, nil)
	body, _ := json.Marshal(models.CheckRequest{Text1: "Hi", Text2: "Hello"})
	w := postCheck(t, srv, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", w.Code)
	}
	var out struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.Error, "at least") {
		t.Errorf("expected length-validation error, got %q", out.Error)
	}
}

func TestHandleCheckMissingField(t *testing.T) {
	srv := newTestServer(t, nil)
	body, _ := json.Marshal(map[string]string{"text1": testParagraph})
	w := postCheck(t, srv, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", w.Code)
	}
}

func TestHandleCheckNoTransformer(t *testing.T) {
	srv := newTestServer(t, nil)
	body, _ := json.Marshal(models.CheckRequest{Text1: testParagraph, Text2: testParagraph})
	w := postCheck(t, srv, body)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	var report models.Report
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatal(err)
	}
	if report.Level3Semantic.Error == "" {
		t.Error("semantic tier must report unavailability")
	}
	if report.Summary.OverallSimilarity != 100 {
		t.Error("lexical tiers must still run without the model")
	}
}

func TestHandlePreflight(t *testing.T) {
	srv := newTestServer(t, nil)
	r := httptest.NewRequest(http.MethodOptions, "/check-plagiarism", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
}

func TestResponseShape(t *testing.T) {
	srv := newTestServer(t, embedding.NewMockEmbedder(384))
	body, _ := json.Marshal(models.CheckRequest{Text1: testParagraph, Text2: testParagraph})
	w := postCheck(t, srv, body)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"success", "level1_basic", "level2_sentence", "level3_semantic", "summary"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("response missing %q", key)
		}
	}

	var level2 map[string]json.RawMessage
	if err := json.Unmarshal(raw["level2_sentence"], &level2); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"method", "plagiarized_sentences", "total_sentences", "plagiarized_count", "threshold"} {
		if _, ok := level2[key]; !ok {
			t.Errorf("level2_sentence missing %q", key)
		}
	}
}
