package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("server defaults: got %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Embedding.Dimensions != 384 || cfg.Embedding.MaxTokens != 256 {
		t.Errorf("embedding defaults: got %+v", cfg.Embedding)
	}
	if cfg.Detect.SentenceThreshold != 0.70 || cfg.Detect.SemanticThreshold != 0.75 {
		t.Errorf("threshold defaults: got %+v", cfg.Detect)
	}
	if cfg.Detect.MinSentenceLength != 10 || cfg.Detect.MinTextLength != 10 {
		t.Errorf("length defaults: got %+v", cfg.Detect)
	}
	if cfg.Detect.RemoveStopwords {
		t.Error("stopword removal must default to off")
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 9000
	cfg.Detect.SentenceThreshold = 0.5
	ApplyDefaults(cfg)
	if cfg.Server.Port != 9000 {
		t.Errorf("explicit port overridden: got %d", cfg.Server.Port)
	}
	if cfg.Detect.SentenceThreshold != 0.5 {
		t.Errorf("explicit threshold overridden: got %f", cfg.Detect.SentenceThreshold)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
debug: true
server:
  port: 9999
embedding:
  model_path: ./model.onnx
detect:
  semantic_threshold: 0.8
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("debug not loaded")
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("port: got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("default host not applied: got %s", cfg.Server.Host)
	}
	if cfg.Detect.SemanticThreshold != 0.8 {
		t.Errorf("semantic threshold: got %f", cfg.Detect.SemanticThreshold)
	}
	want := filepath.Join(dir, "model.onnx")
	if cfg.Embedding.ModelPath != want {
		t.Errorf("model path: got %s, want %s", cfg.Embedding.ModelPath, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
