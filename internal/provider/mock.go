package provider

import "context"

// mockImageURL is a 1x1 transparent PNG, small enough to inline everywhere.
const mockImageURL = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNk+A8AAQUBAScY42YAAAAASUVORK5CYII="

// MockProvider returns deterministic placeholder output so the pipeline can
// run end to end without a configured API key. It never fails.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Live() bool { return false }

func (m *MockProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "AI Text Response:\n" + truncate(prompt, 200), nil
}

func (m *MockProvider) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return mockImageURL, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
