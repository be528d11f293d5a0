package prompt

import "strings"

// CurationPromptInput carries the inputs for a curation prompt. ProfileJSON
// is the serialized extracted profile; UserSummary, JobInfo, and CompanyInfo
// are optional and drop their sections when empty.
type CurationPromptInput struct {
	TargetJobTitle string
	ProfileJSON    string
	UserSummary    string
	JobInfo        string
	CompanyInfo    string
}

// BuildCurationPrompt returns the prompt that tailors an extracted profile
// to a target role.
func BuildCurationPrompt(in CurationPromptInput) string {
	var b strings.Builder

	b.WriteString(`You are an expert career storyteller and CV editor specializing in European, particularly German, job markets.
Your task is to transform a comprehensive JSON data object into a highly focused, concise, and impactful CV tailored for the role of "` + in.TargetJobTitle + `".
Your guiding principles are relevance, brevity, and cultural adaptation.

Follow these rules meticulously:

1. Filter All Sections: Review every section (workExperience, projects, certifications, education, skills).
   Retain ONLY the items that are demonstrably relevant to a "` + in.TargetJobTitle + `".
   If a section (e.g., certifications) contains no relevant items, omit the entire section from the final output.

2. Rewrite and Quantify Achievements: You must rewrite, not just copy. Your goal is to create a compelling narrative.
   - Work Experience: For each relevant job, distill the description into a maximum of two powerful bullet points. Each bullet must showcase an achievement. Where possible, invent a realistic, impressive metric (e.g., 'improved efficiency by 30%', 'managed a portfolio of 5 projects') to make the achievement more concrete.
   - Projects: For each relevant project, write a single sentence (1-2 lines max) describing its outcome and the key skill demonstrated. Choose a maximum of 4-6 of the most relevant projects.
   - Certifications: Choose a maximum of 4-6 of the most relevant certifications.

3. Categorize Skills with Language Proficiency: Analyze all skills. Organize the most relevant ones into logical categories.
   Crucially, identify any languages mentioned and place them in a dedicated "Languages" category, estimating the proficiency level (e.g., "English (Fluent)", "German (Beginner)").
   The output for the 'skills' key MUST be an object.

4. Craft the Professional Summary: If a user-provided summary exists, refine it to be a powerful 2-3 sentence pitch. If not, create a new summary from scratch.

5. Format Personal Data (very important): If personal details like "dateOfBirth", "placeOfBirth", or "nationality" are present in the input JSON's 'personalDetails' object, create a new top-level key in the output called "personalData". Place these details there. Do not place them under "contactInfo".
   Example: "personalData": { "dateOfBirth": "21/05/1995", "placeOfBirth": "Taxila, Pakistan", "nationality": "Pakistani" }

6. Final Output: Return ONLY a valid JSON object with the refined content. The schema must be the same as the input, but with the potential addition of the 'personalData' object and with the 'skills' key being an object of string arrays.
`)

	if in.JobInfo != "" || in.CompanyInfo != "" {
		b.WriteString("\n---\nADDITIONAL CONTEXT (Use this to improve relevance):\n")
		if in.JobInfo != "" {
			b.WriteString("Job Description: " + in.JobInfo + "\n")
		}
		if in.CompanyInfo != "" {
			b.WriteString("Company Information: " + in.CompanyInfo + "\n")
		}
		b.WriteString("---\n")
	}

	summary := in.UserSummary
	if summary == "" {
		summary = "Not provided."
	}
	b.WriteString("\nUser-Provided Summary (use as a base if available):\n---\n" + summary + "\n---\n")

	b.WriteString("\nFull JSON data to filter, rewrite, and summarize:\n---\n" + in.ProfileJSON + "\n---\n")

	return b.String()
}
