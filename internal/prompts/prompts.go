// Package prompts builds the instruction strings sent to the generation
// provider. The functions are pure templates; inputs are assumed to be
// validated already.
package prompts

import "fmt"

// BuildSummaryPrompt embeds the style name and content verbatim.
func BuildSummaryPrompt(content, style string) string {
	return fmt.Sprintf("Summarize the following content in %s style:\n%s", style, content)
}

// BuildQuizPrompt embeds the question count and difficulty.
func BuildQuizPrompt(content string, count int, difficulty string) string {
	return fmt.Sprintf("Generate %d %s multiple-choice questions from:\n%s", count, difficulty, content)
}

// BuildDiagramPrompt embeds the diagram type.
func BuildDiagramPrompt(content, diagramType string) string {
	return fmt.Sprintf("Create a %s diagram from the following content:\n%s", diagramType, content)
}
