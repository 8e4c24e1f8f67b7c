package embedding

import (
	"context"
	"testing"
)

func TestWordTokenizer(t *testing.T) {
	tok := &WordTokenizer{}
	inputIDs, attentionMask, tokenTypeIDs := tok.Tokenize("hello world", 8)
	if len(inputIDs) != 8 || len(attentionMask) != 8 || len(tokenTypeIDs) != 8 {
		t.Fatal("all outputs must be padded to maxTokens")
	}
	if inputIDs[0] != 101 {
		t.Error("first token must be [CLS]")
	}
	if attentionMask[0] != 1 || attentionMask[1] != 1 || attentionMask[2] != 1 {
		t.Error("attention mask must cover CLS and both words")
	}
	if inputIDs[3] != 102 {
		t.Errorf("expected [SEP] after words, got %d", inputIDs[3])
	}
	if attentionMask[7] != 0 {
		t.Error("padding must have zero attention")
	}
}

func TestWordTokenizerTruncates(t *testing.T) {
	tok := &WordTokenizer{}
	inputIDs, _, _ := tok.Tokenize("one two three four five six", 4)
	if len(inputIDs) != 4 {
		t.Fatalf("got %d tokens", len(inputIDs))
	}
}

func TestHashStringDeterministic(t *testing.T) {
	if HashString("abc") != HashString("abc") {
		t.Error("hash must be deterministic")
	}
	if HashString("abc") < 0 {
		t.Error("hash must be non-negative")
	}
}

func TestMockEmbedderDeterministic(t *testing.T) {
	e := NewMockEmbedder(16)
	a, err := e.Embed(context.Background(), "same text")
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.Embed(context.Background(), "same text")
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("identical text must produce identical embeddings")
		}
	}

	var norm float64
	for _, v := range a {
		norm += float64(v * v)
	}
	if norm < 0.999 || norm > 1.001 {
		t.Errorf("embedding must be unit length, got norm^2 = %f", norm)
	}
}

func TestMockEmbedderBatch(t *testing.T) {
	e := NewMockEmbedder(8)
	out, err := e.EmbedBatch(context.Background(), []string{"one", "two", "three"})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d embeddings", len(out))
	}
	if e.Dimensions() != 8 {
		t.Errorf("dimensions: got %d", e.Dimensions())
	}
}
