// Package resume renders a self-contained HTML resume from submitted profile
// data and the extracted skill set. Photos and QR codes are embedded as data
// URIs so the output needs no external assets.
package resume

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const qrSize = 256

// Data carries everything the template needs.
type Data struct {
	Name       string
	Email      string
	Education  string
	Experience string
	Skills     []string
	// PortfolioURL is rendered as a QR code when set.
	PortfolioURL string
	// PhotoFile is an optional path to a profile photo embedded into the page.
	PhotoFile string
}

var tmpl = template.Must(template.New("resume").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Name}} — Resume</title>
<style>
body { font-family: Arial, sans-serif; margin: 30px; }
.section { margin-bottom: 20px; }
h2 { border-bottom: 1px solid #ccc; padding-bottom: 5px; }
.photo { float: right; width: 100px; height: 100px; }
.qr { margin-top: 20px; }
</style>
</head>
<body>
{{if .Photo}}<img class="photo" src="{{.Photo}}" alt="profile photo"/>{{end}}
<h1>{{.Name}}</h1>
<p>Email: {{.Email}}</p>
<div class="section">
<h2>Education</h2>
<p>{{.Education}}</p>
</div>
<div class="section">
<h2>Work Experience</h2>
<p>{{.Experience}}</p>
</div>
<div class="section">
<h2>Skills</h2>
<p>{{.SkillList}}</p>
</div>
{{if .QR}}<div class="qr"><strong>Portfolio:</strong><br><img src="{{.QR}}" width="100" height="100" alt="portfolio qr code"/></div>{{end}}
</body>
</html>
`))

type templateData struct {
	Name       string
	Email      string
	Education  template.HTML
	Experience template.HTML
	SkillList  string
	Photo      template.URL
	QR         template.URL
}

// Render writes the resume HTML to w.
func Render(w io.Writer, data Data) error {
	if strings.TrimSpace(data.Name) == "" {
		return fmt.Errorf("resume name is required")
	}
	if strings.TrimSpace(data.Email) == "" {
		return fmt.Errorf("resume email is required")
	}

	td := templateData{
		Name:       data.Name,
		Email:      data.Email,
		Education:  multiline(data.Education),
		Experience: multiline(data.Experience),
		SkillList:  strings.Join(data.Skills, ", "),
	}

	if data.PhotoFile != "" {
		photo, err := photoDataURI(data.PhotoFile)
		if err != nil {
			return fmt.Errorf("embed photo: %w", err)
		}
		td.Photo = photo
	}

	if data.PortfolioURL != "" {
		qr, err := qrDataURI(data.PortfolioURL)
		if err != nil {
			return fmt.Errorf("embed qr code: %w", err)
		}
		td.QR = qr
	}

	return tmpl.Execute(w, td)
}

// RenderToFile renders the resume into path.
func RenderToFile(path string, data Data) error {
	var buf bytes.Buffer
	if err := Render(&buf, data); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// multiline escapes the text and preserves line breaks.
func multiline(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

func qrDataURI(url string) (template.URL, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		return "", err
	}
	return dataURI(png), nil
}

func photoDataURI(path string) (template.URL, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return dataURI(raw), nil
}

func dataURI(png []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}
