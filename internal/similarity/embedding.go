package similarity

import (
	"context"
	"errors"
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"google.golang.org/genai"
)

// ErrBadVector is returned when two embeddings cannot be compared
var ErrBadVector = errors.New("embeddings are empty or of different dimensions")

// Embedder turns text into a vector
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// embeddingCacheSize bounds the vectors kept between calls; a rank reuses the target's
const embeddingCacheSize = 256

// EmbeddingScorer scores by cosine similarity of embeddings; negative similarity counts as 0
type EmbeddingScorer struct {
	Embedder Embedder
	cache    *lru.Cache[string, []float32]
}

// NewEmbeddingScorer wraps an embedder with a small vector cache, so ranking
// many candidates against one target embeds the target once
func NewEmbeddingScorer(embedder Embedder) *EmbeddingScorer {
	cache, _ := lru.New[string, []float32](embeddingCacheSize)
	return &EmbeddingScorer{Embedder: embedder, cache: cache}
}

// Score implements Scorer
func (s *EmbeddingScorer) Score(ctx context.Context, a, b string) (Result, error) {
	va, err := s.embed(ctx, a)
	if err != nil {
		return Result{}, err
	}
	vb, err := s.embed(ctx, b)
	if err != nil {
		return Result{}, err
	}
	cos, err := Cosine(va, vb)
	if err != nil {
		return Result{}, err
	}
	return Result{Score: round2(math.Max(0, cos) * 100), Method: MethodAI}, nil
}

func (s *EmbeddingScorer) embed(ctx context.Context, text string) ([]float32, error) {
	if s.cache == nil {
		return s.Embedder.Embed(ctx, text)
	}
	if v, ok := s.cache.Get(text); ok {
		return v, nil
	}
	v, err := s.Embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	s.cache.Add(text, v)
	return v, nil
}

// Cosine returns the cosine similarity of two vectors
func Cosine(a, b []float32) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, ErrBadVector
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0, ErrBadVector
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb)), nil
}

// GenAIEmbedder generates embeddings using Google's Gemini API
type GenAIEmbedder struct {
	client *genai.Client
	model  string
}

// NewGenAIEmbedder creates an embedder for the given model
func NewGenAIEmbedder(ctx context.Context, apiKey, model string) (*GenAIEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = "gemini-embedding-001"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIEmbedder{client: client, model: model}, nil
}

// Embed implements Embedder
func (e *GenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, contents, &genai.EmbedContentConfig{
		TaskType: "SEMANTIC_SIMILARITY",
	})
	if err != nil {
		return nil, fmt.Errorf("GenAI embed failed: %w", err)
	}
	if len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	return result.Embeddings[0].Values, nil
}
