package service

import (
	"context"

	"applykit/internal/config"
	"applykit/internal/port"
	"applykit/internal/prompt"
)

// OutreachService generates networking and follow-up messages.
type OutreachService interface {
	AfterApplying(ctx context.Context, apiKey string, input prompt.AfterApplyingInput) (string, error)
	ExpandNetwork(ctx context.Context, apiKey string, input prompt.ExpandNetworkInput) (string, error)
}

type outreachService struct {
	generator port.TextGenerator
	model     string
}

// NewOutreachService creates a new OutreachService implementation.
func NewOutreachService(generator port.TextGenerator, cfg *config.GeminiConfig) OutreachService {
	return &outreachService{
		generator: generator,
		model:     cfg.OutreachModel,
	}
}

func (s *outreachService) AfterApplying(ctx context.Context, apiKey string, input prompt.AfterApplyingInput) (string, error) {
	return s.generator.Generate(ctx, port.GenerateInput{
		APIKey: apiKey,
		Model:  s.model,
		Prompt: prompt.BuildAfterApplyingPrompt(input),
	})
}

func (s *outreachService) ExpandNetwork(ctx context.Context, apiKey string, input prompt.ExpandNetworkInput) (string, error) {
	return s.generator.Generate(ctx, port.GenerateInput{
		APIKey: apiKey,
		Model:  s.model,
		Prompt: prompt.BuildExpandNetworkPrompt(input),
	})
}
