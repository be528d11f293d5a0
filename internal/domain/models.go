package domain

// ProfilePhoto is a client-owned image carried as a base64 payload. It is
// passed through to rendering unmodified.
type ProfilePhoto struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// ContactInfo holds contact and link fields. Link fields are caller-supplied:
// they are merged in after curation and never taken from model output.
type ContactInfo struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// WorkExperience is a single employment entry.
type WorkExperience struct {
	Title       string   `json:"title,omitempty"`
	Company     string   `json:"company,omitempty"`
	Location    string   `json:"location,omitempty"`
	Dates       string   `json:"dates,omitempty"`
	Description []string `json:"description,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Dates       string `json:"dates,omitempty"`
}

// Project is a single project entry.
type Project struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Certification is a single certification entry.
type Certification struct {
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// PersonalDetails carries caller-supplied identity fields. They are merged
// into profiles by the service layer and must never be invented by a model.
type PersonalDetails struct {
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Location     string `json:"location,omitempty"`
	Summary      string `json:"summary,omitempty"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	PlaceOfBirth string `json:"placeOfBirth,omitempty"`
	Nationality  string `json:"nationality,omitempty"`
}

// Links are caller-supplied profile URLs.
type Links struct {
	LinkedInURL  string `json:"linkedinUrl,omitempty"`
	GitHubURL    string `json:"githubUrl,omitempty"`
	PortfolioURL string `json:"portfolioUrl,omitempty"`
}

// PersonalData is the curated-profile block for identity fields, kept
// separate from ContactInfo.
type PersonalData struct {
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	PlaceOfBirth string `json:"placeOfBirth,omitempty"`
	Nationality  string `json:"nationality,omitempty"`
}

// ExtractedProfile is the structured form of raw candidate text, as returned
// by the extraction stage. Skills are a flat list; fields absent in the source
// text stay unset and are omitted from JSON.
type ExtractedProfile struct {
	Name            string           `json:"name,omitempty"`
	Title           string           `json:"title,omitempty"`
	ContactInfo     *ContactInfo     `json:"contactInfo,omitempty"`
	Summary         string           `json:"summary,omitempty"`
	WorkExperience  []WorkExperience `json:"workExperience,omitempty"`
	Education       []Education      `json:"education,omitempty"`
	Skills          []string         `json:"skills,omitempty"`
	Projects        []Project        `json:"projects,omitempty"`
	Certifications  []Certification  `json:"certifications,omitempty"`
	PersonalDetails *PersonalDetails `json:"personalDetails,omitempty"`
}

// CuratedProfile is a role-tailored profile. Unlike ExtractedProfile, skills
// are grouped into named categories and identity fields live in PersonalData.
// Curation always produces a new CuratedProfile; inputs are never mutated.
type CuratedProfile struct {
	Name           string              `json:"name,omitempty"`
	Title          string              `json:"title,omitempty"`
	ContactInfo    *ContactInfo        `json:"contactInfo,omitempty"`
	Summary        string              `json:"summary,omitempty"`
	Skills         map[string][]string `json:"skills,omitempty"`
	WorkExperience []WorkExperience    `json:"workExperience,omitempty"`
	Education      []Education         `json:"education,omitempty"`
	Projects       []Project           `json:"projects,omitempty"`
	Certifications []Certification     `json:"certifications,omitempty"`
	PersonalData   *PersonalData       `json:"personalData,omitempty"`
}
