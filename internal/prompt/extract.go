// Package prompt builds instruction strings for the text-generation API.
// Builders are pure: identical input yields an identical prompt, optional
// inputs that are empty drop their whole section, and no bracket-style
// placeholders are ever emitted.
package prompt

// BuildExtractionPrompt returns the prompt that converts raw candidate text
// into a structured profile JSON object.
func BuildExtractionPrompt(rawText string) string {
	return `You are a precise CV parsing agent.
Analyze the unstructured text and convert it into a structured JSON object. Adhere strictly to the JSON schema.
If information is missing, omit the key. Do not change the content, just parse it into clean JSON.

CRITICAL: Escape special characters like double quotes (") with a backslash (\") to ensure valid JSON output.
CRITICAL: Format all dates to a consistent MM/YYYY or DD/MM/YYYY, e.g. change August 2025 to 08/2025 or 3rd September 2024 to 03/09/2024.

JSON Schema:
- name: string
- title: string
- contactInfo: { email: string, phone: string, location: string }
- summary: string
- workExperience: [{ title: string, company: string, location: string, dates: string, description: string[] }]
- education: [{ institution: string, degree: string, dates: string }]
- skills: string[]
- projects: [{ name: string, description: string, url?: string }]
- certifications: [{ name: string, issuer: string, date: string }]

Provide ONLY the clean JSON object.
Text:
---
` + rawText + `
---
`
}
