package models

// Summarization styles, quiz difficulties and diagram types accepted by the
// AI endpoints. Empty values fall back to the defaults.
const (
	StyleBrief        = "brief"
	StyleDetailed     = "detailed"
	StyleBulletPoints = "bullet-points"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	DiagramFlowchart  = "flowchart"
	DiagramMindmap    = "mindmap"
	DiagramConceptMap = "concept-map"
)

type SummarizeRequest struct {
	Content string `json:"content"`
	Style   string `json:"style"`
}

type QuizRequest struct {
	Content       string `json:"content"`
	QuestionCount int    `json:"question_count"`
	Difficulty    string `json:"difficulty"`
}

type DiagramRequest struct {
	Content     string `json:"content"`
	DiagramType string `json:"diagram_type"`
}

type SummaryResult struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
	Topics    []string `json:"topics"`
	WordCount int      `json:"word_count"`
}

type Question struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// QuizResult holds generated questions. TotalQuestions always equals
// len(Questions).
type QuizResult struct {
	Title          string     `json:"title"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

type DiagramResult struct {
	Title       string `json:"title"`
	ImageURL    string `json:"image_url,omitempty"`
	DiagramCode string `json:"diagram_code,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}
