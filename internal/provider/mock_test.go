package provider

import (
	"context"
	"strings"
	"testing"
)

func TestMockGenerateTextDeterministic(t *testing.T) {
	m := NewMockProvider()
	ctx := context.Background()

	a, err := m.GenerateText(ctx, "same prompt")
	if err != nil {
		t.Fatalf("mock must never fail, got %v", err)
	}
	b, err := m.GenerateText(ctx, "same prompt")
	if err != nil {
		t.Fatalf("mock must never fail, got %v", err)
	}

	if a != b {
		t.Errorf("mock output not deterministic: %q vs %q", a, b)
	}
	if !strings.Contains(a, "same prompt") {
		t.Errorf("mock text should echo the prompt, got %q", a)
	}
}

func TestMockGenerateTextTruncatesLongPrompt(t *testing.T) {
	m := NewMockProvider()

	long := strings.Repeat("x", 1000)
	out, err := m.GenerateText(context.Background(), long)
	if err != nil {
		t.Fatalf("mock must never fail, got %v", err)
	}
	if len(out) >= len(long) {
		t.Errorf("expected truncated echo, got %d bytes", len(out))
	}
}

func TestMockGenerateImage(t *testing.T) {
	m := NewMockProvider()

	url, err := m.GenerateImage(context.Background(), "any prompt")
	if err != nil {
		t.Fatalf("mock must never fail, got %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("expected data URL, got %q", url)
	}

	again, _ := m.GenerateImage(context.Background(), "different prompt")
	if url != again {
		t.Error("mock image reference should be fixed")
	}
}

func TestMockIsNotLive(t *testing.T) {
	if NewMockProvider().Live() {
		t.Error("mock provider must report Live() == false")
	}
}
