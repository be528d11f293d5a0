package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"applykit/internal/prompt"
)

func TestBuildExtractionPrompt(t *testing.T) {
	p := prompt.BuildExtractionPrompt("John Doe\nSoftware Engineer at Acme")

	assert.Contains(t, p, "John Doe\nSoftware Engineer at Acme")
	assert.Contains(t, p, "Provide ONLY the clean JSON object.")
	assert.Contains(t, p, "omit the key")
	assert.Contains(t, p, "MM/YYYY or DD/MM/YYYY")
}

func TestBuildExtractionPrompt_Deterministic(t *testing.T) {
	a := prompt.BuildExtractionPrompt("same text")
	b := prompt.BuildExtractionPrompt("same text")
	assert.Equal(t, a, b)
}

func TestBuildCurationPrompt_FullContext(t *testing.T) {
	p := prompt.BuildCurationPrompt(prompt.CurationPromptInput{
		TargetJobTitle: "Data Engineer",
		ProfileJSON:    `{"name":"Jane"}`,
		UserSummary:    "Five years of pipelines.",
		JobInfo:        "Builds ETL systems.",
		CompanyInfo:    "Mid-size fintech.",
	})

	assert.Contains(t, p, `tailored for the role of "Data Engineer"`)
	assert.Contains(t, p, "ADDITIONAL CONTEXT")
	assert.Contains(t, p, "Job Description: Builds ETL systems.")
	assert.Contains(t, p, "Company Information: Mid-size fintech.")
	assert.Contains(t, p, "Five years of pipelines.")
	assert.Contains(t, p, `{"name":"Jane"}`)
	assert.Contains(t, p, `"Languages" category`)
	assert.Contains(t, p, `"personalData"`)
}

func TestBuildCurationPrompt_NoOptionalContext(t *testing.T) {
	p := prompt.BuildCurationPrompt(prompt.CurationPromptInput{
		TargetJobTitle: "Data Engineer",
		ProfileJSON:    `{}`,
	})

	assert.NotContains(t, p, "ADDITIONAL CONTEXT")
	assert.NotContains(t, p, "Job Description:")
	assert.NotContains(t, p, "Company Information:")
	assert.Contains(t, p, "Not provided.")
}

func TestBuildAssistantPrompt_OmitsCandidateSectionWhenEmpty(t *testing.T) {
	p := prompt.BuildAssistantPrompt(prompt.AssistantPromptInput{
		Question: "Why do you want this job?",
		JobTitle: "Backend Developer",
	})

	assert.NotContains(t, p, "CANDIDATE INFO")
	assert.Contains(t, p, "Applying for: Backend Developer")
	assert.Contains(t, p, `"Why do you want this job?"`)
	assert.NotContains(t, p, "ADDITIONAL GUIDELINES")
}

func TestBuildAssistantPrompt_IncludesOptionalSections(t *testing.T) {
	p := prompt.BuildAssistantPrompt(prompt.AssistantPromptInput{
		CandidateName:     "Jane Smith",
		CandidateJobTitle: "Platform Engineer",
		CandidateData:     "8 years with Kubernetes.",
		Question:          "Describe a challenge.",
		JobTitle:          "Platform Engineer",
		JobDescription:    "Own the cluster fleet.",
		CompanyInfo:       "Runs 40 clusters.",
		UserGuideline:     "Keep it short.",
	})

	assert.Contains(t, p, "CANDIDATE INFO")
	assert.Contains(t, p, "- Name: Jane Smith")
	assert.Contains(t, p, "8 years with Kubernetes.")
	assert.Contains(t, p, "Job Description:\nOwn the cluster fleet.")
	assert.Contains(t, p, "Company Info:\nRuns 40 clusters.")
	assert.Contains(t, p, `ADDITIONAL GUIDELINES FROM USER: "Keep it short."`)
}

func TestBuildCoverLetterPrompt_GreetingDefaults(t *testing.T) {
	p := prompt.BuildCoverLetterPrompt(prompt.CoverLetterPromptInput{
		CandidateInfo:  "Jane, engineer.",
		JobDescription: "Ship features.",
		RoleTitle:      "Frontend Engineer",
	})

	assert.Contains(t, p, "Dear Hiring Manager,")
	assert.NotContains(t, p, "Position:")
	assert.NotContains(t, p, "COMPANY INFORMATION")
	assert.NotContains(t, p, "ADDITIONAL GUIDELINES")
}

func TestBuildCoverLetterPrompt_NamedRecipient(t *testing.T) {
	p := prompt.BuildCoverLetterPrompt(prompt.CoverLetterPromptInput{
		CandidateInfo:     "Jane, engineer.",
		JobDescription:    "Ship features.",
		CompanyInfo:       "Small startup.",
		UserGuideline:     "Mention open source.",
		RoleTitle:         "Frontend Engineer",
		RecipientName:     "Alex Mueller",
		RecipientPosition: "Head of Engineering",
	})

	assert.Contains(t, p, "Dear Alex Mueller, Head of Engineering,")
	assert.Contains(t, p, "COMPANY INFORMATION:\nSmall startup.")
	assert.Contains(t, p, "Mention open source.")
	assert.Contains(t, p, "Name: Alex Mueller")
	assert.Contains(t, p, "Position: Head of Engineering")
}

func TestBuildAfterApplyingPrompt_SharedUniversityGating(t *testing.T) {
	base := prompt.AfterApplyingInput{
		UserInfo:       prompt.UserInfo{UserName: "Sam"},
		RecipientName:  "Dana",
		CompanyName:    "Acme",
		JobTitle:       "QA Engineer",
		MessageType:    "detailed email",
		UniversityName: "TU Berlin",
	}

	// University line only appears for the fellow-alum relationship.
	withRole := base
	withRole.RecipientRole = "university fellow in company"
	p := prompt.BuildAfterApplyingPrompt(withRole)
	assert.Contains(t, p, "Shared University: TU Berlin")

	withoutRole := base
	withoutRole.RecipientRole = "recruiter"
	p = prompt.BuildAfterApplyingPrompt(withoutRole)
	assert.NotContains(t, p, "Shared University")
}

func TestBuildAfterApplyingPrompt_OmitsEmptySections(t *testing.T) {
	p := prompt.BuildAfterApplyingPrompt(prompt.AfterApplyingInput{
		UserInfo:    prompt.UserInfo{UserName: "Sam"},
		CompanyName: "Acme",
		JobTitle:    "QA Engineer",
		MessageType: "short linkedin message",
	})

	assert.NotContains(t, p, "Recipient's Name:")
	assert.NotContains(t, p, "My thoughts on the job")
	assert.NotContains(t, p, "My links")
	assert.Contains(t, p, "Role I applied for: QA Engineer")
	assert.Contains(t, p, `use my name ("Sam")`)
}

func TestBuildAfterApplyingPrompt_IncludesLinks(t *testing.T) {
	p := prompt.BuildAfterApplyingPrompt(prompt.AfterApplyingInput{
		UserInfo: prompt.UserInfo{
			UserName:     "Sam",
			LinkedInLink: "https://linkedin.com/in/sam",
			GitHubLink:   "https://github.com/sam",
		},
		CompanyName: "Acme",
		JobTitle:    "QA Engineer",
		MessageType: "detailed email",
	})

	assert.Contains(t, p, "- LinkedIn: https://linkedin.com/in/sam")
	assert.Contains(t, p, "- GitHub: https://github.com/sam")
	assert.NotContains(t, p, "Portfolio/Website:")
}

func TestBuildExpandNetworkPrompt_RelationshipDefault(t *testing.T) {
	p := prompt.BuildExpandNetworkPrompt(prompt.ExpandNetworkInput{
		UserInfo:      prompt.UserInfo{UserName: "Sam"},
		RecipientName: "Dana",
		MessageType:   "one liner message",
	})

	assert.Contains(t, p, "general professional connection")
	assert.NotContains(t, p, "My Relationship to Recipient:")
	assert.NotContains(t, p, "Purpose of Outreach:")
}

func TestBuildExpandNetworkPrompt_JoinsContexts(t *testing.T) {
	p := prompt.BuildExpandNetworkPrompt(prompt.ExpandNetworkInput{
		UserInfo:      prompt.UserInfo{UserName: "Sam", Profession: "Data Analyst"},
		RecipientName: "Dana",
		Relationship:  "former colleague",
		Contexts:      []string{"catching up", "new role search"},
		MessageType:   "detailed email",
	})

	assert.Contains(t, p, "Purpose of Outreach: catching up, new role search")
	assert.Contains(t, p, "- Profession: Data Analyst")
	assert.Contains(t, p, "former colleague")
}

func TestPrompts_NeverEmitPlaceholders(t *testing.T) {
	prompts := []string{
		prompt.BuildExtractionPrompt("text"),
		prompt.BuildCurationPrompt(prompt.CurationPromptInput{TargetJobTitle: "X", ProfileJSON: "{}"}),
		prompt.BuildAssistantPrompt(prompt.AssistantPromptInput{Question: "Q", JobTitle: "T"}),
		prompt.BuildCoverLetterPrompt(prompt.CoverLetterPromptInput{CandidateInfo: "C", JobDescription: "J", RoleTitle: "R"}),
		prompt.BuildAfterApplyingPrompt(prompt.AfterApplyingInput{UserInfo: prompt.UserInfo{UserName: "U"}, CompanyName: "C", JobTitle: "J", MessageType: "detailed email"}),
		prompt.BuildExpandNetworkPrompt(prompt.ExpandNetworkInput{UserInfo: prompt.UserInfo{UserName: "U"}, MessageType: "one liner message"}),
	}

	for _, p := range prompts {
		assert.False(t, strings.Contains(p, "[INSERT"), "prompt leaks a placeholder")
		assert.False(t, strings.Contains(p, "{{"), "prompt leaks a template token")
	}
}
