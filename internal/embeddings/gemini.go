package embeddings

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements Provider on top of the Gemini embedding API.
type GeminiProvider struct {
	client *genai.Client
	model  string

	mu  sync.Mutex
	dim int // learned from the first successful call
}

// NewGemini creates a Gemini embeddings provider.
func NewGemini(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("embedding model name is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: model}, nil
}

// ModelID identifies the backing model.
func (p *GeminiProvider) ModelID() string {
	return "gemini:" + p.model
}

// Dim returns the vector dimensionality, or DefaultDim before the first
// successful call.
func (p *GeminiProvider) Dim() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.dim == 0 {
		return DefaultDim
	}
	return p.dim
}

// Embed embeds a single text.
func (p *GeminiProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	em := p.client.EmbeddingModel(p.model)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("embedding response missing values")
	}

	p.recordDim(len(resp.Embedding.Values))
	return resp.Embedding.Values, nil
}

// EmbedBatch embeds several texts in one API call, preserving order.
func (p *GeminiProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	em := p.client.EmbeddingModel(p.model)
	batch := em.NewBatch()
	for _, text := range texts {
		batch = batch.AddContent(genai.Text(text))
	}

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to embed batch: %w", err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding batch returned %d vectors for %d texts", len(resp.Embeddings), len(texts))
	}

	out := make([][]float32, len(texts))
	for i, emb := range resp.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, fmt.Errorf("embedding batch item %d missing values", i)
		}
		out[i] = emb.Values
	}

	p.recordDim(len(out[0]))
	return out, nil
}

// Close releases the underlying API client.
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

func (p *GeminiProvider) recordDim(dim int) {
	p.mu.Lock()
	p.dim = dim
	p.mu.Unlock()
}
