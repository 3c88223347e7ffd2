package normalizer

import (
	"strings"
	"testing"
)

func TestNormalizeSummaryMock(t *testing.T) {
	content := strings.Repeat("study material ", 10)

	res := NormalizeSummary(content, "ignored raw", false)

	if !strings.HasPrefix(res.Summary, "Mock summary: ") {
		t.Errorf("unexpected mock summary: %q", res.Summary)
	}
	if len(res.KeyPoints) == 0 || len(res.Topics) == 0 {
		t.Error("mock summary must carry placeholder key points and topics")
	}
	if res.WordCount != 20 {
		t.Errorf("expected word_count 20, got %d", res.WordCount)
	}
}

func TestNormalizeSummaryLive(t *testing.T) {
	res := NormalizeSummary("original content here", "The model produced this summary", true)

	if res.Summary != "The model produced this summary" {
		t.Errorf("live summary should be the raw model text, got %q", res.Summary)
	}
	if res.WordCount != 5 {
		t.Errorf("expected word_count 5, got %d", res.WordCount)
	}
}

func TestNormalizeQuizMock(t *testing.T) {
	res := NormalizeQuiz("ignored", false)

	if res.TotalQuestions != len(res.Questions) {
		t.Errorf("total_questions %d != len(questions) %d", res.TotalQuestions, len(res.Questions))
	}
	if len(res.Questions) != 1 {
		t.Fatalf("mock quiz should have exactly one question, got %d", len(res.Questions))
	}

	q := res.Questions[0]
	if q.Type != "multiple-choice" || len(q.Options) != 4 || q.CorrectAnswer == "" {
		t.Errorf("malformed mock question: %+v", q)
	}
}

func TestNormalizeQuizLive(t *testing.T) {
	res := NormalizeQuiz("raw model text", true)

	if res.TotalQuestions != len(res.Questions) {
		t.Errorf("total_questions %d != len(questions) %d", res.TotalQuestions, len(res.Questions))
	}
	if res.Questions == nil {
		t.Error("questions must be an empty slice, not nil")
	}
}

func TestNormalizeDiagramMock(t *testing.T) {
	res := NormalizeDiagram("data:image/png;base64,abc", false)

	if res.ImageURL != "data:image/png;base64,abc" {
		t.Errorf("mock diagram should carry the provider image, got %q", res.ImageURL)
	}
	if res.Title == "" {
		t.Error("diagram title must be set")
	}
}

func TestNormalizeDiagramDeterministic(t *testing.T) {
	a := NormalizeDiagram("same", false)
	b := NormalizeDiagram("same", false)
	if *a != *b {
		t.Error("diagram normalization must be deterministic")
	}
}
