package services

import (
	"context"
	"fmt"

	"github.com/studyaid/studyaid-api/internal/config"
	"github.com/studyaid/studyaid-api/internal/models"
	"github.com/studyaid/studyaid-api/internal/normalizer"
	"github.com/studyaid/studyaid-api/internal/prompts"
	"github.com/studyaid/studyaid-api/internal/provider"
	"github.com/studyaid/studyaid-api/internal/utils"
	"github.com/studyaid/studyaid-api/internal/validator"
)

const (
	minQuizQuestions = 1
	maxQuizQuestions = 20

	defaultQuizQuestions = 5
)

// AIService runs the generation pipeline: validate, build prompt, call the
// provider, normalize the output. It holds no per-request state.
type AIService interface {
	Summarize(ctx context.Context, req *models.SummarizeRequest) (*models.SummaryResult, error)
	Quiz(ctx context.Context, req *models.QuizRequest) (*models.QuizResult, error)
	Diagram(ctx context.Context, req *models.DiagramRequest) (*models.DiagramResult, error)
}

type aiService struct {
	provider provider.Provider
	cfg      *config.Config
	logger   *utils.Logger
}

func NewAIService(p provider.Provider, cfg *config.Config, logger *utils.Logger) AIService {
	return &aiService{
		provider: p,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *aiService) Summarize(ctx context.Context, req *models.SummarizeRequest) (*models.SummaryResult, error) {
	if err := validator.ValidateContent(req.Content, s.cfg.MinContentLength, s.cfg.MaxContentLength); err != nil {
		return nil, err
	}

	style := req.Style
	switch style {
	case models.StyleBrief, models.StyleDetailed, models.StyleBulletPoints:
	case "":
		style = models.StyleDetailed
	default:
		return nil, utils.NewBadRequestError(fmt.Sprintf("Unknown summary style %q", style))
	}

	prompt := prompts.BuildSummaryPrompt(req.Content, style)
	raw, err := s.provider.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Error("Summary generation failed", "error", err)
		return nil, err
	}

	return normalizer.NormalizeSummary(req.Content, raw, s.provider.Live()), nil
}

func (s *aiService) Quiz(ctx context.Context, req *models.QuizRequest) (*models.QuizResult, error) {
	if err := validator.ValidateContent(req.Content, s.cfg.MinContentLength, s.cfg.MaxContentLength); err != nil {
		return nil, err
	}

	count := req.QuestionCount
	if count == 0 {
		count = defaultQuizQuestions
	}
	if count < minQuizQuestions || count > maxQuizQuestions {
		return nil, utils.NewBadRequestError(
			fmt.Sprintf("question_count must be between %d and %d", minQuizQuestions, maxQuizQuestions))
	}

	difficulty := req.Difficulty
	switch difficulty {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
	case "":
		difficulty = models.DifficultyMedium
	default:
		return nil, utils.NewBadRequestError(fmt.Sprintf("Unknown difficulty %q", difficulty))
	}

	prompt := prompts.BuildQuizPrompt(req.Content, count, difficulty)
	raw, err := s.provider.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Error("Quiz generation failed", "error", err)
		return nil, err
	}

	return normalizer.NormalizeQuiz(raw, s.provider.Live()), nil
}

func (s *aiService) Diagram(ctx context.Context, req *models.DiagramRequest) (*models.DiagramResult, error) {
	if err := validator.ValidateContent(req.Content, s.cfg.MinContentLength, s.cfg.MaxContentLength); err != nil {
		return nil, err
	}

	diagramType := req.DiagramType
	switch diagramType {
	case models.DiagramFlowchart, models.DiagramMindmap, models.DiagramConceptMap:
	case "":
		diagramType = models.DiagramFlowchart
	default:
		return nil, utils.NewBadRequestError(fmt.Sprintf("Unknown diagram type %q", diagramType))
	}

	prompt := prompts.BuildDiagramPrompt(req.Content, diagramType)
	raw, err := s.provider.GenerateImage(ctx, prompt)
	if err != nil {
		s.logger.Error("Diagram generation failed", "error", err)
		return nil, err
	}

	return normalizer.NormalizeDiagram(raw, s.provider.Live()), nil
}
