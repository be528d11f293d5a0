package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"applykit/internal/config"
	"applykit/internal/domain"
	"applykit/internal/port"
	"applykit/internal/service"
	"applykit/mocks"
)

func newCVService(gen *mocks.MockTextGenerator) service.CVService {
	cfg := &config.GeminiConfig{ExtractModel: "gemini-2.5-flash"}
	return service.NewCVService(gen, cfg)
}

func TestCVService_Extract_StripsFencesAndParses(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(in port.GenerateInput) bool {
		return in.APIKey == "key" && in.Model == "gemini-2.5-flash"
	})).Return("```json\n{\"name\":\"Jane Doe\",\"skills\":[\"Go\"]}\n```", nil)

	svc := newCVService(gen)
	profile, err := svc.Extract(context.Background(), "key", "Jane Doe, Go developer")

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, []string{"Go"}, profile.Skills)
	gen.AssertExpectations(t)
}

func TestCVService_Extract_PromptContainsRawText(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(in port.GenerateInput) bool {
		return strings.Contains(in.Prompt, "raw profile text here")
	})).Return(`{"name":"X"}`, nil)

	svc := newCVService(gen)
	_, err := svc.Extract(context.Background(), "key", "raw profile text here")

	require.NoError(t, err)
	gen.AssertExpectations(t)
}

func TestCVService_Extract_InvalidModelOutput(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("I cannot parse this CV, sorry.", nil)

	svc := newCVService(gen)
	profile, err := svc.Extract(context.Background(), "key", "text")

	assert.Nil(t, profile)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidModelOutput))
}

func TestCVService_Extract_GeneratorError(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("", domain.ErrUpstream)

	svc := newCVService(gen)
	_, err := svc.Extract(context.Background(), "key", "text")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstream))
}

func TestCVService_Curate_CallerContactWins(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).
		Return(`{"name":"Jane","contactInfo":{"email":"model@example.com","phone":"000"},"skills":{"Languages":["English (Fluent)"]}}`, nil)

	svc := newCVService(gen)
	curated, err := svc.Curate(context.Background(), service.CurateInput{
		APIKey:         "key",
		Model:          "gemini-2.0-flash-lite",
		Extracted:      &domain.ExtractedProfile{Name: "Jane"},
		TargetJobTitle: "Data Engineer",
		PersonalDetails: &domain.PersonalDetails{
			Email:    "caller@example.com",
			Location: "Berlin",
		},
		Links: &domain.Links{
			LinkedInURL: "https://linkedin.com/in/jane",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "caller@example.com", curated.ContactInfo.Email)
	assert.Equal(t, "Berlin", curated.ContactInfo.Location)
	assert.Equal(t, "https://linkedin.com/in/jane", curated.ContactInfo.LinkedIn)
	// Fields the caller did not supply keep the model's values.
	assert.Equal(t, "000", curated.ContactInfo.Phone)
	assert.Equal(t, []string{"English (Fluent)"}, curated.Skills["Languages"])
}

func TestCVService_Curate_PromptSeesCallerDetails(t *testing.T) {
	var captured string
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(port.GenerateInput).Prompt
		}).
		Return(`{"name":"Jane"}`, nil)

	extracted := &domain.ExtractedProfile{Name: "Jane"}
	svc := newCVService(gen)
	_, err := svc.Curate(context.Background(), service.CurateInput{
		APIKey:         "key",
		Model:          "m",
		Extracted:      extracted,
		TargetJobTitle: "Data Engineer",
		PersonalDetails: &domain.PersonalDetails{
			Email:       "caller@example.com",
			DateOfBirth: "21/05/1995",
			Summary:     "Builds data platforms.",
		},
	})

	require.NoError(t, err)
	assert.Contains(t, captured, "caller@example.com")
	assert.Contains(t, captured, "21/05/1995")
	assert.Contains(t, captured, "Builds data platforms.")
	// The input profile must not be mutated by the merge.
	assert.Nil(t, extracted.ContactInfo)
	assert.Nil(t, extracted.PersonalDetails)
}

func TestCVService_Curate_NoCallerDetails(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).
		Return(`{"name":"Jane","contactInfo":{"email":"model@example.com"}}`, nil)

	svc := newCVService(gen)
	curated, err := svc.Curate(context.Background(), service.CurateInput{
		APIKey:         "key",
		Model:          "m",
		Extracted:      &domain.ExtractedProfile{Name: "Jane"},
		TargetJobTitle: "Data Engineer",
	})

	require.NoError(t, err)
	assert.Equal(t, "model@example.com", curated.ContactInfo.Email)
}

func TestCVService_Curate_InvalidModelOutput(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("not json", nil)

	svc := newCVService(gen)
	_, err := svc.Curate(context.Background(), service.CurateInput{
		APIKey:         "key",
		Model:          "m",
		Extracted:      &domain.ExtractedProfile{},
		TargetJobTitle: "X",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidModelOutput))
}
