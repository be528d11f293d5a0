package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"applykit/internal/config"
	"applykit/internal/port"
	"applykit/internal/prompt"
	"applykit/internal/service"
	"applykit/mocks"
)

func newOutreachService(gen *mocks.MockTextGenerator) service.OutreachService {
	return service.NewOutreachService(gen, &config.GeminiConfig{OutreachModel: "gemini-2.0-flash-lite"})
}

func TestOutreachService_AfterApplying(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(in port.GenerateInput) bool {
		return in.Model == "gemini-2.0-flash-lite" &&
			strings.Contains(in.Prompt, "Role I applied for: QA Engineer")
	})).Return("Hi Dana, following up on my application.", nil)

	svc := newOutreachService(gen)
	msg, err := svc.AfterApplying(context.Background(), "key", prompt.AfterApplyingInput{
		UserInfo:    prompt.UserInfo{UserName: "Sam"},
		CompanyName: "Acme",
		JobTitle:    "QA Engineer",
		MessageType: "short linkedin message",
	})

	require.NoError(t, err)
	assert.Equal(t, "Hi Dana, following up on my application.", msg)
	gen.AssertExpectations(t)
}

func TestOutreachService_ExpandNetwork(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(in port.GenerateInput) bool {
		return in.Model == "gemini-2.0-flash-lite" &&
			strings.Contains(in.Prompt, "former colleague")
	})).Return("Hey Dana, it's been a while.", nil)

	svc := newOutreachService(gen)
	msg, err := svc.ExpandNetwork(context.Background(), "key", prompt.ExpandNetworkInput{
		UserInfo:      prompt.UserInfo{UserName: "Sam"},
		RecipientName: "Dana",
		Relationship:  "former colleague",
		MessageType:   "short whatsapp casual message",
	})

	require.NoError(t, err)
	assert.Equal(t, "Hey Dana, it's been a while.", msg)
}
