package prompt

import "strings"

// CoverLetterPromptInput carries the inputs for a cover-letter prompt.
// CandidateInfo is the text extracted from the uploaded attachment.
type CoverLetterPromptInput struct {
	CandidateInfo     string
	JobDescription    string
	CompanyInfo       string
	UserGuideline     string
	RoleTitle         string
	RecipientName     string
	RecipientPosition string
}

// BuildCoverLetterPrompt returns the prompt for generating a tailored
// cover letter.
func BuildCoverLetterPrompt(in CoverLetterPromptInput) string {
	greetingName := in.RecipientName
	if greetingName == "" {
		greetingName = "Hiring Manager"
	}
	greetingTitle := ""
	if in.RecipientPosition != "" {
		greetingTitle = ", " + in.RecipientPosition
	}

	var b strings.Builder

	b.WriteString(`You are an expert career coach and professional cover-letter strategist with over 20 years of experience writing emotionally intelligent, data-backed, and interview-winning cover letters.

Your job: write a concise, compelling, and human-sounding cover letter tailored to the given role, company, and candidate. The letter should feel like a real person, experienced, warm, and self-aware, talking about work with conviction, not a polished AI system writing prose.

Core writing directives (strictly follow each):

1. Human unpredictability, not perfection: vary rhythm aggressively. Alternate between quick, clipped sentences (2-7 words) and longer, more reflective ones (25-55 words). Drop in one or two small imperfections: a fragment, an unfinished thought, or a pause (...). Use contractions naturally ("I'm", "I've", "it's"). Never sound overly formal.
2. Corporate tone, conversational vibe: keep it grounded in real-world business language, not slang. Skip fluff like "I'm thrilled to apply" or "I'm writing to express". Start with an empathetic, job-specific observation instead. Be confident but humble; replace self-praise with proof through story or metrics.
3. Burstiness and flow: vary sentence structure. Blend emotion with precision (e.g., "It wasn't easy, but we delivered 20% ahead of schedule"). Avoid tidy symmetry or repetitive rhythm.
4. Avoid detector patterns: rotate synonyms for strong verbs (never repeat "lead", "drive", "manage" more than twice). Avoid connectors like "moreover", "furthermore", "in addition". Include one or two reflective asides. Keep sentence-length fluctuation high.
5. Emotion and personal touch: include one short, believable anecdote that ties to the role's main challenge. Express subtle emotion without dramatics.
6. Professional clarity: keep it under 300 words. Avoid emojis, special characters, or markdown formatting.
   Start with:
   Dear ` + greetingName + greetingTitle + `,
   End with a confident, human closing line inviting a conversation, no "Sincerely" or "Best regards".
7. Core structure: an empathetic hook addressing the job's real challenge (about 100 words); measurable achievements aligned with company goals (about 150 words); a reflective but confident close (40-50 words), no cliches.
8. Writing tone: straightforward, emotionally aware, reflective, and humanly inconsistent in rhythm. Avoid buzzwords like "leverage", "optimize", "synergy".

INPUTS
CANDIDATE INFO:
` + in.CandidateInfo + `

JOB DESCRIPTION:
` + in.JobDescription + `
`)

	if in.CompanyInfo != "" {
		b.WriteString("\nCOMPANY INFORMATION:\n" + in.CompanyInfo + "\n")
	}
	if in.UserGuideline != "" {
		b.WriteString("\nADDITIONAL GUIDELINES FROM USER (follow these closely):\n" + in.UserGuideline + "\n")
	}

	b.WriteString("\nROLE:\n" + in.RoleTitle + "\n")

	b.WriteString("\nRECIPIENT INFO:\nName: " + greetingName + "\n")
	if in.RecipientPosition != "" {
		b.WriteString("Position: " + in.RecipientPosition + "\n")
	}

	b.WriteString(`
Output rules:
- Output only the final plain-text cover letter.
- No comments, headers, or extra notes.
- Follow all burstiness and anti-pattern directives above.
`)

	return b.String()
}
