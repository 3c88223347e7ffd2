// Package normalizer maps raw provider output into the stable result
// shapes the API returns. The mapping is intentionally incomplete in
// places: live model output is not yet parsed into structured key points or
// quiz questions. Those branches return clearly marked placeholders so the
// response contract stays stable while structured generation lands behind
// the provider abstraction.
package normalizer

import (
	"github.com/studyaid/studyaid-api/internal/extractor"
	"github.com/studyaid/studyaid-api/internal/models"
)

// NormalizeSummary shapes a summary result. In live mode the raw model text
// becomes the summary; key points and topics are hardcoded stubs until the
// model is asked for structured output. In mock mode the result echoes a
// prefix of the input so responses stay deterministic.
func NormalizeSummary(content, raw string, live bool) *models.SummaryResult {
	if !live {
		return &models.SummaryResult{
			Summary:   "Mock summary: " + prefix(content, 50) + "...",
			KeyPoints: []string{"Mock Point 1", "Mock Point 2"},
			Topics:    []string{"Mock Topic"},
			WordCount: extractor.CountWords(content),
		}
	}

	return &models.SummaryResult{
		Summary: raw,
		// Stub: raw model output is not parsed into structured points yet.
		KeyPoints: []string{"Extracted point 1", "Extracted point 2"},
		Topics:    []string{"General"},
		WordCount: extractor.CountWords(raw),
	}
}

// NormalizeQuiz shapes a quiz result. Mock mode returns a fixed
// single-question quiz; live mode returns an empty quiz until structured
// parsing of model output is implemented.
func NormalizeQuiz(raw string, live bool) *models.QuizResult {
	if !live {
		questions := []models.Question{
			{
				ID:            "q1",
				Type:          "multiple-choice",
				Question:      "What is 2+2?",
				Options:       []string{"3", "4", "5", "6"},
				CorrectAnswer: "4",
				Explanation:   "Math.",
			},
		}
		return &models.QuizResult{
			Title:          "Mock Quiz",
			Questions:      questions,
			TotalQuestions: len(questions),
		}
	}

	// Stub: structured question parsing pending.
	return &models.QuizResult{
		Title:          "Generated Quiz",
		Questions:      []models.Question{},
		TotalQuestions: 0,
	}
}

// NormalizeDiagram shapes a diagram result. Mock mode returns the fixed
// placeholder image; live mode returns a placeholder until the diagram
// representation (image vs mermaid source) is settled.
func NormalizeDiagram(raw string, live bool) *models.DiagramResult {
	if !live {
		return &models.DiagramResult{
			Title:       "Mock Diagram",
			ImageURL:    raw,
			Explanation: "A mock placeholder diagram.",
		}
	}

	return &models.DiagramResult{
		Title:       "Generated Diagram",
		Explanation: "Diagram rendering pending structured output support.",
	}
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
