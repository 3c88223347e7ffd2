// Package provider abstracts the generative backend. A live Gemini
// implementation and a deterministic mock share the same interface; the
// factory picks the mock automatically when no API key is configured, so
// the rest of the pipeline stays exercisable without external dependencies.
package provider

import (
	"context"

	"github.com/studyaid/studyaid-api/internal/utils"
)

type Provider interface {
	// GenerateText sends a prompt to the backing model and returns its
	// textual output.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateImage returns an encoded image reference (data URL) for the
	// prompt.
	GenerateImage(ctx context.Context, prompt string) (string, error)

	// Live reports whether this provider calls a real model.
	Live() bool
}

// New returns the Gemini provider when an API key is configured and the
// mock otherwise. Credential absence is a mode switch, not an error; it is
// logged once here at startup.
func New(apiKey, model string, logger *utils.Logger) Provider {
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY not set, AI generation runs in mock mode")
		return NewMockProvider()
	}
	logger.Info("AI generation running in live mode", "model", model)
	return NewGeminiProvider(apiKey, model)
}
