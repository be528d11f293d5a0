package port

import "context"

// GenerateInput carries a single text-generation request. The API key is
// supplied by the caller on every request and never stored server-side.
type GenerateInput struct {
	APIKey string
	Model  string
	Prompt string
}

// TextGenerator abstracts the upstream text-completion service.
type TextGenerator interface {
	Generate(ctx context.Context, input GenerateInput) (string, error)
}
