package service

import (
	"context"
	"encoding/json"
	"fmt"

	"applykit/internal/config"
	"applykit/internal/domain"
	"applykit/internal/port"
	"applykit/internal/prompt"
)

// CurateInput is the DTO for tailoring an extracted profile to a role.
// PersonalDetails and Links come from the caller and are authoritative: they
// overwrite whatever the model produces for those fields.
type CurateInput struct {
	APIKey          string
	Model           string
	Extracted       *domain.ExtractedProfile
	TargetJobTitle  string
	PersonalDetails *domain.PersonalDetails
	Links           *domain.Links
	JobInfo         string
	CompanyInfo     string
}

// CVService defines the CV extraction and curation contract. Both operations
// are stateless and re-entrant: curation can be re-run against the same
// extracted profile for a different target role without re-extracting.
type CVService interface {
	Extract(ctx context.Context, apiKey, rawText string) (*domain.ExtractedProfile, error)
	Curate(ctx context.Context, input CurateInput) (*domain.CuratedProfile, error)
}

type cvService struct {
	generator    port.TextGenerator
	extractModel string
}

// NewCVService creates a new CVService implementation.
func NewCVService(generator port.TextGenerator, cfg *config.GeminiConfig) CVService {
	return &cvService{
		generator:    generator,
		extractModel: cfg.ExtractModel,
	}
}

func (s *cvService) Extract(ctx context.Context, apiKey, rawText string) (*domain.ExtractedProfile, error) {
	text, err := s.generator.Generate(ctx, port.GenerateInput{
		APIKey: apiKey,
		Model:  s.extractModel,
		Prompt: prompt.BuildExtractionPrompt(rawText),
	})
	if err != nil {
		return nil, err
	}

	var profile domain.ExtractedProfile
	if err := json.Unmarshal([]byte(StripCodeFences(text)), &profile); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidModelOutput, err)
	}
	return &profile, nil
}

func (s *cvService) Curate(ctx context.Context, input CurateInput) (*domain.CuratedProfile, error) {
	merged := mergeDetailsIntoExtracted(input.Extracted, input.PersonalDetails)

	profileJSON, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling profile: %w", err)
	}

	userSummary := ""
	if input.PersonalDetails != nil {
		userSummary = input.PersonalDetails.Summary
	}

	text, err := s.generator.Generate(ctx, port.GenerateInput{
		APIKey: input.APIKey,
		Model:  input.Model,
		Prompt: prompt.BuildCurationPrompt(prompt.CurationPromptInput{
			TargetJobTitle: input.TargetJobTitle,
			ProfileJSON:    string(profileJSON),
			UserSummary:    userSummary,
			JobInfo:        input.JobInfo,
			CompanyInfo:    input.CompanyInfo,
		}),
	})
	if err != nil {
		return nil, err
	}

	var curated domain.CuratedProfile
	if err := json.Unmarshal([]byte(StripCodeFences(text)), &curated); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidModelOutput, err)
	}

	mergeCallerData(&curated, input.PersonalDetails, input.Links)
	return &curated, nil
}

// mergeDetailsIntoExtracted returns a copy of the extracted profile with
// caller-supplied contact details and the personalDetails block attached, so
// the curation prompt sees them. The input profile is not modified.
func mergeDetailsIntoExtracted(extracted *domain.ExtractedProfile, details *domain.PersonalDetails) *domain.ExtractedProfile {
	merged := *extracted
	if details == nil {
		return &merged
	}

	contact := domain.ContactInfo{}
	if extracted.ContactInfo != nil {
		contact = *extracted.ContactInfo
	}
	if details.Email != "" {
		contact.Email = details.Email
	}
	if details.Phone != "" {
		contact.Phone = details.Phone
	}
	if details.Location != "" {
		contact.Location = details.Location
	}
	merged.ContactInfo = &contact

	detailsCopy := *details
	merged.PersonalDetails = &detailsCopy
	return &merged
}

// mergeCallerData enforces the field ownership rule on the curated profile.
// The model may set every content field (summary, experience, education,
// skills, projects, certifications, personalData); the caller owns contact
// email, phone, location, and the LinkedIn/GitHub/portfolio links. Caller
// values overwrite model output for those fields unconditionally.
func mergeCallerData(curated *domain.CuratedProfile, details *domain.PersonalDetails, links *domain.Links) {
	if details == nil && links == nil {
		return
	}
	if curated.ContactInfo == nil {
		curated.ContactInfo = &domain.ContactInfo{}
	}
	if details != nil {
		if details.Email != "" {
			curated.ContactInfo.Email = details.Email
		}
		if details.Phone != "" {
			curated.ContactInfo.Phone = details.Phone
		}
		if details.Location != "" {
			curated.ContactInfo.Location = details.Location
		}
	}
	if links != nil {
		if links.LinkedInURL != "" {
			curated.ContactInfo.LinkedIn = links.LinkedInURL
		}
		if links.GitHubURL != "" {
			curated.ContactInfo.GitHub = links.GitHubURL
		}
		if links.PortfolioURL != "" {
			curated.ContactInfo.Portfolio = links.PortfolioURL
		}
	}
}
