package service

import (
	"context"

	"applykit/internal/port"
	"applykit/internal/prompt"
)

// CoverLetterInput is the DTO for generating a cover letter. CandidateInfo
// is the text already extracted from the uploaded attachment.
type CoverLetterInput struct {
	APIKey            string
	Model             string
	CandidateInfo     string
	JobDescription    string
	CompanyInfo       string
	UserGuideline     string
	RoleTitle         string
	RecipientName     string
	RecipientPosition string
}

// CoverLetterService generates tailored cover letters.
type CoverLetterService interface {
	Generate(ctx context.Context, input CoverLetterInput) (string, error)
}

type coverLetterService struct {
	generator port.TextGenerator
}

// NewCoverLetterService creates a new CoverLetterService implementation.
func NewCoverLetterService(generator port.TextGenerator) CoverLetterService {
	return &coverLetterService{generator: generator}
}

func (s *coverLetterService) Generate(ctx context.Context, input CoverLetterInput) (string, error) {
	return s.generator.Generate(ctx, port.GenerateInput{
		APIKey: input.APIKey,
		Model:  input.Model,
		Prompt: prompt.BuildCoverLetterPrompt(prompt.CoverLetterPromptInput{
			CandidateInfo:     input.CandidateInfo,
			JobDescription:    input.JobDescription,
			CompanyInfo:       input.CompanyInfo,
			UserGuideline:     input.UserGuideline,
			RoleTitle:         input.RoleTitle,
			RecipientName:     input.RecipientName,
			RecipientPosition: input.RecipientPosition,
		}),
	})
}
