// Package embedding produces dense sentence embeddings via a pretrained
// ONNX model. The model is loaded once at process start and shared
// read-only by all requests.
package embedding

import "context"

// Embedder produces vector embeddings for text. Implementations must be
// safe for concurrent use.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
	Close() error
}
