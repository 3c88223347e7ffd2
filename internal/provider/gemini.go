package provider

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	genai "google.golang.org/genai"

	"github.com/studyaid/studyaid-api/internal/utils"
)

const defaultModel = "gemini-2.5-flash"

// GeminiProvider calls the Gemini API. The underlying client is built
// lazily on first use; the sync.Once makes concurrent first calls safe and
// the handle is reused for the lifetime of the process.
type GeminiProvider struct {
	apiKey string
	model  string

	initOnce sync.Once
	client   *genai.Client
	initErr  error
}

func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	if model == "" {
		model = defaultModel
	}
	return &GeminiProvider{apiKey: apiKey, model: model}
}

func (g *GeminiProvider) Live() bool { return true }

func (g *GeminiProvider) ensureClient(ctx context.Context) (*genai.Client, error) {
	g.initOnce.Do(func() {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: g.apiKey})
		if err != nil {
			g.initErr = fmt.Errorf("failed to create gemini client: %w", err)
			return
		}
		g.client = client
	})
	return g.client, g.initErr
}

func (g *GeminiProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	client, err := g.ensureClient(ctx)
	if err != nil {
		return "", utils.NewGenerationError("Failed to initialize generation backend", err)
	}

	res, err := client.Models.GenerateContent(ctx, g.model, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}, nil)
	if err != nil {
		return "", utils.NewGenerationError("Generation backend call failed", err)
	}

	return res.Text(), nil
}

func (g *GeminiProvider) GenerateImage(ctx context.Context, prompt string) (string, error) {
	client, err := g.ensureClient(ctx)
	if err != nil {
		return "", utils.NewGenerationError("Failed to initialize generation backend", err)
	}

	res, err := client.Models.GenerateContent(ctx, g.model, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}, nil)
	if err != nil {
		return "", utils.NewGenerationError("Generation backend call failed", err)
	}

	// Prefer inline image data when the model returns any; fall back to the
	// textual output (e.g. mermaid source) otherwise.
	for _, cand := range res.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				encoded := base64.StdEncoding.EncodeToString(part.InlineData.Data)
				return fmt.Sprintf("data:%s;base64,%s", part.InlineData.MIMEType, encoded), nil
			}
		}
	}

	return res.Text(), nil
}
