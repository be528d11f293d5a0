package service

import (
	"context"

	"applykit/internal/config"
	"applykit/internal/port"
	"applykit/internal/prompt"
)

// AnswerInput is the DTO for an application-assistant question.
type AnswerInput struct {
	APIKey            string
	CandidateName     string
	CandidateJobTitle string
	CandidateData     string
	Question          string
	JobTitle          string
	JobDescription    string
	CompanyInfo       string
	UserGuideline     string
}

// AssistantService answers application questions on the candidate's behalf.
type AssistantService interface {
	Answer(ctx context.Context, input AnswerInput) (string, error)
}

type assistantService struct {
	generator port.TextGenerator
	model     string
}

// NewAssistantService creates a new AssistantService implementation.
func NewAssistantService(generator port.TextGenerator, cfg *config.GeminiConfig) AssistantService {
	return &assistantService{
		generator: generator,
		model:     cfg.AssistantModel,
	}
}

func (s *assistantService) Answer(ctx context.Context, input AnswerInput) (string, error) {
	return s.generator.Generate(ctx, port.GenerateInput{
		APIKey: input.APIKey,
		Model:  s.model,
		Prompt: prompt.BuildAssistantPrompt(prompt.AssistantPromptInput{
			CandidateName:     input.CandidateName,
			CandidateJobTitle: input.CandidateJobTitle,
			CandidateData:     input.CandidateData,
			Question:          input.Question,
			JobTitle:          input.JobTitle,
			JobDescription:    input.JobDescription,
			CompanyInfo:       input.CompanyInfo,
			UserGuideline:     input.UserGuideline,
		}),
	})
}
