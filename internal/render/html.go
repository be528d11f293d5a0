// Package render builds the printable CV markup. The same markup feeds both
// the HTML preview response and the headless-browser PDF path, so a CV
// previews exactly as it prints.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"applykit/internal/domain"
)

var cvTemplate = template.Must(template.New("cv").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(cvMarkup))

var footerTemplate = template.Must(template.New("footer").Parse(footerMarkup))

type cvData struct {
	Profile  *domain.CuratedProfile
	PhotoURL template.URL
	Year     int
}

// BuildHTML renders a curated profile into a self-contained HTML document.
// The photo is optional; when present it is embedded as a data URL so the
// document needs no network access to render.
func BuildHTML(profile *domain.CuratedProfile, photo *domain.ProfilePhoto) (string, error) {
	data := cvData{
		Profile: profile,
		Year:    time.Now().Year(),
	}
	if photo != nil && photo.Data != "" {
		data.PhotoURL = template.URL(fmt.Sprintf("data:%s;base64,%s", photo.MimeType, photo.Data))
	}

	var buf bytes.Buffer
	if err := cvTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering cv markup: %w", err)
	}
	return buf.String(), nil
}

// HeaderHTML returns the print header document. It is intentionally empty
// styled markup that overrides the browser's default date/title header.
func HeaderHTML() string {
	return headerMarkup
}

// FooterHTML returns the print footer document: location and date on the
// left, the candidate's name in a script face on the right, the way a signed
// letter closes.
func FooterHTML(profile *domain.CuratedProfile, now time.Time) (string, error) {
	location := "City"
	if profile.ContactInfo != nil && profile.ContactInfo.Location != "" {
		location = profile.ContactInfo.Location
	}

	var buf bytes.Buffer
	err := footerTemplate.Execute(&buf, map[string]string{
		"Location": location,
		"Date":     now.Format("02/01/2006"),
		"Name":     profile.Name,
	})
	if err != nil {
		return "", fmt.Errorf("rendering footer markup: %w", err)
	}
	return buf.String(), nil
}

const cvMarkup = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{if .Profile.Name}}CV - {{.Profile.Name}}{{else}}Curriculum Vitae{{end}}</title>
    <style>
        @page {
            size: A4;
            margin: 10mm;
            @bottom-center {
                content: "© {{.Year}} {{.Profile.Name}} — Page " counter(page);
                font-size: 9pt;
                font-family: Calibri, Arial, sans-serif;
                color: #555;
            }
        }

        * {
            box-sizing: border-box;
            margin: 0;
            padding: 0;
        }

        body {
            font-family: Calibri, Arial, Helvetica, sans-serif;
            font-size: 11pt;
            color: #333;
            line-height: 1.25;
            counter-reset: page;
        }

        body::before {
            content: "";
            position: fixed;
            top: 0;
            left: 0;
            right: 0;
            bottom: 0;
            border: 1px solid #003399;
            pointer-events: none;
        }

        .cv-container {
            padding: 5mm;
        }

        .cv-header {
            display: flex;
            align-items: center;
            justify-content: space-between;
            border-bottom: 2px solid #003399;
            padding-bottom: 5px;
            margin-bottom: 10px;
        }

        .header-text h1 {
            font-size: 20pt;
            color: #003399;
            font-weight: 700;
        }

        .header-text h2 {
            font-size: 12pt;
            color: #333;
            font-weight: normal;
        }

        .contact-line {
            font-size: 10pt;
            color: #444;
            margin-top: 6px;
        }

        .contact-line a {
            color: #003399;
            text-decoration: none;
        }
        .contact-line a:hover { text-decoration: underline; }

        .profile-photo {
            width: 85px;
            height: 85px;
            border-radius: 50%;
            object-fit: cover;
            margin-left: 15px;
        }

        section {
            margin-bottom: 8px;
        }

        section h2 {
            font-size: 13pt;
            color: #003399;
            border-bottom: 1px solid #003399;
            margin-bottom: 6px;
            font-weight: 600;
            padding-bottom: 2px;
        }

        article {
            margin-bottom: 4px;
        }

        .entry-header {
            display: flex;
            justify-content: space-between;
            align-items: baseline;
        }

        .entry-header h3 {
            font-size: 11.5pt;
            color: #111;
            font-weight: bold;
        }

        .entry-header .dates {
            font-size: 10pt;
            color: #666;
            font-style: italic;
        }

        .sub-header {
            font-size: 10.5pt;
            color: #444;
            margin: 2px 0 4px 0;
        }

        .job-description {
            padding-left: 18px;
        }

        .job-description li {
            margin-bottom: 2px;
        }

        .skills-section {
            display: flex;
            flex-direction: column;
            gap: 6px;
        }

        .skill-category h4 {
            font-size: 10.5pt;
            color: #003399;
            margin-bottom: 2px;
        }

        .skill-category p {
            font-size: 10.5pt;
            color: #333;
        }
    </style>
</head>
<body>
    <main class="cv-container">
        <header class="cv-header">
            <div class="header-text">
                {{if .Profile.Name}}<h1>{{.Profile.Name}}</h1>{{end}}
                {{if .Profile.Title}}<h2>{{.Profile.Title}}</h2>{{end}}

                <div class="contact-line">
                    {{with .Profile.ContactInfo}}{{if .Location}}<span>{{.Location}}</span>{{end}}{{if .Phone}} • <span>{{.Phone}}</span>{{end}}{{end}}{{with .Profile.PersonalData}}{{if .DateOfBirth}} • <span>Born: {{.DateOfBirth}}</span>{{end}}{{if .Nationality}} • <span>Nationality: {{.Nationality}}</span>{{end}}{{end}}
                </div>

                <div class="contact-line">
                    {{with .Profile.ContactInfo}}{{if .Email}}<a href="mailto:{{.Email}}">{{.Email}}</a>{{end}}{{if .LinkedIn}} • <a href="{{.LinkedIn}}" target="_blank">LinkedIn</a>{{end}}{{if .GitHub}} • <a href="{{.GitHub}}" target="_blank">GitHub</a>{{end}}{{if .Portfolio}} • <a href="{{.Portfolio}}" target="_blank">Portfolio</a>{{end}}{{end}}
                </div>
            </div>
            {{if .PhotoURL}}<img src="{{.PhotoURL}}" alt="Profile photo of {{.Profile.Name}}" class="profile-photo">{{end}}
        </header>

        {{if .Profile.Summary}}<section><p>{{.Profile.Summary}}</p></section>{{end}}

        {{if .Profile.Education}}<section><h2>Education</h2>{{range .Profile.Education}}<article><div class="entry-header"><h3>{{.Institution}}</h3><span class="dates">{{.Dates}}</span></div><p class="sub-header">{{.Degree}}</p></article>{{end}}</section>{{end}}

        {{if .Profile.WorkExperience}}<section><h2>Work Experience</h2>{{range .Profile.WorkExperience}}<article><div class="entry-header"><h3>{{.Title}}</h3><span class="dates">{{.Dates}}</span></div><p class="sub-header">{{.Company}}{{if .Location}} — {{.Location}}{{end}}</p>{{if .Description}}<ul class="job-description">{{range .Description}}<li>{{.}}</li>{{end}}</ul>{{end}}</article>{{end}}</section>{{end}}

        {{if .Profile.Certifications}}<section><h2>Certifications</h2>{{range .Profile.Certifications}}<article><p class="sub-header"><strong>{{.Name}}</strong>{{if .Issuer}} — {{.Issuer}}{{end}}{{if .Date}} ({{.Date}}){{end}}</p></article>{{end}}</section>{{end}}

        {{if .Profile.Projects}}<section><h2>Projects</h2>{{range .Profile.Projects}}<article><div class="entry-header"><h3>{{.Name}}</h3></div><p class="sub-header">{{.Description}}{{if .URL}} (<a href="{{.URL}}" target="_blank">Link</a>){{end}}</p></article>{{end}}</section>{{end}}

        {{if .Profile.Skills}}<section><h2>Skills</h2><div class="skills-section">{{range $category, $items := .Profile.Skills}}<div class="skill-category"><h4>{{$category}}</h4><p>{{join $items " • "}}</p></div>{{end}}</div></section>{{end}}
    </main>
</body>
</html>`

const headerMarkup = `<!DOCTYPE html>
<html>
    <head>
        <style>
            body {
                display: flex;
                justify-content: center;
                align-items: center;
                width: 100%;
                height: 100%;
                margin: 0;
            }
        </style>
    </head>
    <body></body>
</html>`

const footerMarkup = `<!DOCTYPE html>
<html>
    <head>
        <style>
            body {
                box-sizing: border-box;
                display: flex;
                justify-content: space-between;
                align-items: center;
                width: 100%;
                height: 100%;
                font-size: 9pt;
                font-family: Calibri, Arial, sans-serif;
                color: #555;
                margin: 0;
                padding: 0 10mm;
            }
            .signature {
                font-family: 'Brush Script MT', cursive;
            }
        </style>
    </head>
    <body>
        <span>{{.Location}}, {{.Date}}</span>
        <span class="signature">, {{.Name}}</span>
    </body>
</html>`
