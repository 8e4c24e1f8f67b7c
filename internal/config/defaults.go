package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Embedding.ModelPath == "" {
		cfg.Embedding.ModelPath = "/usr/local/var/ruiji/models/all-MiniLM-L6-v2.onnx"
	}
	if cfg.Embedding.Dimensions == 0 {
		cfg.Embedding.Dimensions = 384
	}
	if cfg.Embedding.MaxTokens == 0 {
		cfg.Embedding.MaxTokens = 256
	}
	if cfg.Embedding.CacheSize == 0 {
		cfg.Embedding.CacheSize = 10000
	}
	if cfg.Detect.SentenceThreshold == 0 {
		cfg.Detect.SentenceThreshold = 0.70
	}
	if cfg.Detect.SemanticThreshold == 0 {
		cfg.Detect.SemanticThreshold = 0.75
	}
	if cfg.Detect.MinSentenceLength == 0 {
		cfg.Detect.MinSentenceLength = 10
	}
	if cfg.Detect.MinTextLength == 0 {
		cfg.Detect.MinTextLength = 10
	}
}
