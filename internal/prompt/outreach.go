package prompt

import "strings"

// UserInfo identifies the sender of an outreach message.
type UserInfo struct {
	UserName     string `json:"userName"`
	GitHubLink   string `json:"githubLink,omitempty"`
	WebsiteLink  string `json:"websiteLink,omitempty"`
	LinkedInLink string `json:"linkedinLink,omitempty"`
	Profession   string `json:"profession,omitempty"`
}

// AfterApplyingInput carries the inputs for a follow-up message after
// submitting an application.
type AfterApplyingInput struct {
	UserInfo          UserInfo `json:"userInfo"`
	RecipientName     string   `json:"recipientName"`
	RecipientRole     string   `json:"recipientRole"`
	UniversityName    string   `json:"universityName,omitempty"`
	CompanyName       string   `json:"companyName"`
	RecipientPosition string   `json:"recipientPosition,omitempty"`
	JobTitle          string   `json:"jobTitle"`
	MessageType       string   `json:"messageType"`
	AboutJob          string   `json:"aboutJob,omitempty"`
	AboutCompany      string   `json:"aboutCompany,omitempty"`
}

// ExpandNetworkInput carries the inputs for a reconnect/networking message.
type ExpandNetworkInput struct {
	UserInfo      UserInfo `json:"userInfo"`
	RecipientName string   `json:"recipientName"`
	Relationship  string   `json:"relationship"`
	Contexts      []string `json:"contexts,omitempty"`
	MessageType   string   `json:"messageType"`
}

// formatLinks renders the sender's professional links, or "" when none exist.
func formatLinks(info UserInfo) string {
	var lines []string
	if info.LinkedInLink != "" {
		lines = append(lines, "- LinkedIn: "+info.LinkedInLink)
	}
	if info.GitHubLink != "" {
		lines = append(lines, "- GitHub: "+info.GitHubLink)
	}
	if info.WebsiteLink != "" {
		lines = append(lines, "- Portfolio/Website: "+info.WebsiteLink)
	}
	if len(lines) == 0 {
		return ""
	}
	return "Here are my professional links for reference:\n" + strings.Join(lines, "\n")
}

// BuildAfterApplyingPrompt returns the prompt for a post-application
// outreach message.
func BuildAfterApplyingPrompt(in AfterApplyingInput) string {
	linkSection := formatLinks(in.UserInfo)

	var b strings.Builder

	b.WriteString(`You are a professional communication expert specializing in concise, natural, and personalized outreach writing. Your goal is to craft a clear, context-aware message that feels written by a thoughtful human, not an AI.

MY DETAILS
- Name: ` + in.UserInfo.UserName + "\n")

	b.WriteString("\nRECIPIENT DETAILS\n")
	if in.RecipientName != "" {
		b.WriteString("- Recipient's Name: " + in.RecipientName + "\n")
	}
	if in.CompanyName != "" {
		b.WriteString("- Company: " + in.CompanyName + "\n")
	}
	if in.RecipientRole != "" {
		b.WriteString("- My Relationship to Recipient: " + in.RecipientRole + "\n")
	}
	if in.RecipientPosition != "" {
		b.WriteString("- Recipient's Position: " + in.RecipientPosition + "\n")
	}
	if in.UniversityName != "" && in.RecipientRole == "university fellow in company" {
		b.WriteString("- Shared University: " + in.UniversityName + "\n")
	}

	b.WriteString("\nCONTEXT\n- Role I applied for: " + in.JobTitle + "\n")
	if in.AboutCompany != "" {
		b.WriteString("- My thoughts on the company: \"" + in.AboutCompany + "\"\n")
	}
	if in.AboutJob != "" {
		b.WriteString("- My thoughts on the job: \"" + in.AboutJob + "\"\n")
	}

	b.WriteString(`
TASK
Write a ` + in.MessageType + ` that:
- Builds connection and shows genuine interest in the role and company.
- Naturally weaves in any provided thoughts (about job or company) if available.
- References a shared university early, if applicable.
- Never includes or invents placeholders.
- Omits any section where no data is provided.
- Avoids AI-sounding phrasing and keeps the tone human, concise, and authentic.

TONE AND FORMATTING RULES
1. No setup text: output only the final message, no headers or explanations.
2. Personalization: use my name ("` + in.UserInfo.UserName + `") directly.
3. Dynamic linking: if my links are provided below and the message type is "detailed email" or "short linkedin message", list them neatly in bullet points at the end of the message under a small "Links:" label. For "one liner 200 characters connection request message", omit links entirely.
4. Tone by message type: a detailed email is professional, courteous, and structured (subject, greeting, body, sign-off); a short linkedin message is conversational and concise (4-5 lines); a one liner connection request stays under 200 characters with clear intent and no filler.
`)

	if linkSection != "" {
		b.WriteString("\nMy links (for your reference):\n" + linkSection + "\n")
	}

	b.WriteString("\nNow generate the outreach message following all rules exactly.\n")

	return b.String()
}

// BuildExpandNetworkPrompt returns the prompt for a reconnect/networking
// message.
func BuildExpandNetworkPrompt(in ExpandNetworkInput) string {
	linkSection := formatLinks(in.UserInfo)
	contextString := strings.Join(in.Contexts, ", ")

	var b strings.Builder

	b.WriteString(`You are a friendly yet professional communication expert.
Your job is to craft a personalized outreach message that feels warm, genuine, and human, never robotic or templated.

MY DETAILS
- Name: ` + in.UserInfo.UserName + "\n")
	if in.UserInfo.Profession != "" {
		b.WriteString("- Profession: " + in.UserInfo.Profession + "\n")
	}

	b.WriteString("\nRECIPIENT DETAILS\n")
	if in.RecipientName != "" {
		b.WriteString("- Recipient's Name: " + in.RecipientName + "\n")
	}
	if in.Relationship != "" {
		b.WriteString("- My Relationship to Recipient: " + in.Relationship + "\n")
	}

	b.WriteString("\nCONTEXT\n")
	if contextString != "" {
		b.WriteString("- Purpose of Outreach: " + contextString + "\n")
	}
	b.WriteString("- Goal: Reconnect, share a brief professional update, and remind them to keep me in mind for relevant opportunities.\n")

	relationship := in.Relationship
	if relationship == "" {
		relationship = "general professional connection"
	}

	b.WriteString(`
TASK
Write a ` + in.MessageType + ` that:
- Feels personal and contextually relevant to our relationship (` + relationship + `).
- Avoids any placeholders.
- Omits any section for which no data is provided (no weird empty lines).
- Keeps the tone friendly, human, and natural, not stiff, salesy, or overly formal.
- Never invents details I didn't provide.
- Ends gracefully, leaving room for a natural reply or future conversation.

TONE AND FORMATTING RULES
1. Direct output: only output the message text, no commentary.
2. Personalization: always use my name ("` + in.UserInfo.UserName + `") directly.
3. Dynamic links: if my links are provided below and the message type is "detailed email" or "short linkedin message", list them neatly in bullet points under "Links:" at the end of the message. For "short whatsapp casual message", integrate my LinkedIn or portfolio conversationally if relevant. For "one liner message", omit links completely.
4. Tone by message type: a detailed email is warm, professional, and structured; a short whatsapp casual message is chill and friendly (emojis allowed if natural); a short linkedin message is brief and approachable (under 5 sentences); a one liner message is quick, natural, and under 150 characters.
`)

	if linkSection != "" {
		b.WriteString("\nMy links (for your reference):\n" + linkSection + "\n")
	}

	b.WriteString("\nNow generate the final outreach message following all rules exactly.\n")

	return b.String()
}
